package marketplace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkPayload validates a request payload against its struct tags before
// anything goes on the wire. The constraints mirror the server's schemas,
// so a rejected payload would only come back as a 422.
func checkPayload(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("marketplace: invalid payload: %s", strings.Join(msgs, "; "))
	}
	return err
}
