package tools

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/triply/travelhub/core"
)

var validate = validator.New()

// DecodeArgs converts a raw tool argument map into a typed input struct
// and applies its validate tags. Shape and constraint failures both come
// back as validation errors so the caller rejects the single operation.
func DecodeArgs(args map[string]interface{}, input interface{}) error {
	b, err := json.Marshal(args)
	if err != nil {
		return core.Validationf("invalid arguments: %v", err)
	}
	if err := json.Unmarshal(b, input); err != nil {
		return core.Validationf("invalid argument shape: %v", err)
	}
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" validation")
			}
			return core.Validationf("%s", strings.Join(msgs, "; "))
		}
		return core.Validationf("%v", err)
	}
	return nil
}
