// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.
package tracker

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

const pageIndex = "index.html"

//go:embed templates/*.html
var pages embed.FS

// Renderer renders the embedded HTML pages for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded HTML pages.
func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(pages, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}

	r := Renderer{
		templates: templates,
	}

	return &r, nil
}

// Render executes the page with the given name.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
