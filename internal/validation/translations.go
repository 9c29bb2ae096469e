// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"reflect"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	translations := []struct {
		tag             string
		customRegisFunc validator.RegisterTranslationsFunc
		customTransFunc validator.TranslationFunc
	}{
		{
			tag: "gte",
			customRegisFunc: func(ut ut.Translator) error {
				if err := ut.Add("gte-duration", "{0} must be {1} or greater", true); err != nil {
					return err
				}

				return ut.Add("gte-number", "{0} must be {1} or greater", true)
			},
			customTransFunc: func(ut ut.Translator, fe validator.FieldError) string {
				key := "gte-number"
				if fe.Type() == reflect.TypeOf(time.Duration(0)) {
					key = "gte-duration"
				}

				translation, err := ut.T(key, fe.Field(), fe.Param())
				if err != nil {
					return fe.Error()
				}

				return translation
			},
		},
		{
			tag: "single_char",
			customRegisFunc: func(ut ut.Translator) error {
				return ut.Add("single_char", "{0} must be exactly one character", false)
			},
			customTransFunc: translateFunc,
		},
	}

	for _, entry := range translations {
		if err := validate.RegisterTranslation(entry.tag, trans, entry.customRegisFunc, entry.customTransFunc); err != nil {
			return err
		}
	}

	return nil
}

func translateFunc(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return t
}
