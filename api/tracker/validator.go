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
	"github.com/go-playground/validator/v10"

	"github.com/optakt/swarm-tracker/models/swarm"
)

const (
	tagRequired = "required"
	tagEOA      = "eoa"
)

func newRequestValidator() *validator.Validate {
	validate := validator.New()

	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation(tagEOA, eoaValidator)

	return validate
}

func eoaValidator(fl validator.FieldLevel) bool {
	return swarm.ValidAddress(fl.Field().String())
}
