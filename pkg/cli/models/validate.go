/* Copyright 2025 Off Course Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report JSON names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "scan_status", stringIn(ScanStatuses))
	mustRegister(v, "asset_type", stringIn(AssetTypes))
	mustRegister(v, "user_role", stringIn(UserRoles))
	mustRegister(v, "log_level", intIn(LogLevels))
	mustRegister(v, "path_class", func(fl validator.FieldLevel) bool {
		p := PathClassification(fl.Field().Int())
		return p >= PathClassificationNone && p <= PathClassificationDescendant
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func stringIn[S ~string](allowed []S) validator.Func {
	return func(fl validator.FieldLevel) bool {
		got := fl.Field().String()
		for _, a := range allowed {
			if string(a) == got {
				return true
			}
		}

		return false
	}
}

func intIn[I ~int](allowed []I) validator.Func {
	return func(fl validator.FieldLevel) bool {
		got := fl.Field().Int()
		for _, a := range allowed {
			if int64(a) == got {
				return true
			}
		}

		return false
	}
}
