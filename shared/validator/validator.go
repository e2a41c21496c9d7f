package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"rentacar/shared/failure"
	"rentacar/shared/rental"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func stringValidation(check func(string) bool) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		return check(str)
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	customValidations := map[string]val.Func{
		"city":      stringValidation(rental.IsCity),
		"car_type":  stringValidation(rental.IsCarType),
		"fuel_type": stringValidation(rental.IsFuelType),
		"brand":     stringValidation(rental.IsBrand),
		"date": stringValidation(func(value string) bool {
			_, err := rental.ParseDate(value)

			return err == nil
		}),
	}

	for tag, fn := range customValidations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
