package validations

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	res "github.com/ChokeGuy/coin-change/pkg/http_response"
	"github.com/ChokeGuy/coin-change/util"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CustomErrorMessage maps field names and validation tags to more user-friendly error messages.
var CustomErrorMessage = map[string]map[string]string{
	"TargetAmount": {
		"required": "Target amount is required.",
		"min":      "Target amount must be a number between 0 and 10000.",
		"max":      "Target amount must be a number between 0 and 10000.",
	},
	"CoinDenominations": {
		"required":     "At least one coin denomination is required.",
		"min":          "At least one coin denomination is required.",
		"denomination": "Only allowed denominations are permitted: " + allowedList() + ".",
	},
}

// FormMessages maps request building errors to the text shown on the form.
var FormMessages = map[error]string{
	ErrNoValidDenominations:  "Please enter valid coin denominations from the allowed list.",
	ErrRejectedDenominations: "Only allowed denominations are permitted.",
	ErrTargetOutOfRange:      "Target amount must be a number between 0 and 10000.",
}

// DenominationWarning is shown next to the denominations field when it is flagged.
const DenominationWarning = "Only allowed denominations are permitted."

func allowedList() string {
	return strings.ReplaceAll(util.FormatNumbers(util.SupportedDenominations()), ",", ", ")
}

// FormatValidationError formats validator errors into a more readable format.
func FormatValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var errorMessages []string
		for _, fieldErr := range ve {
			field := baseField(fieldErr.StructField())
			tag := fieldErr.Tag()
			if msg, ok := CustomErrorMessage[field][tag]; ok {
				errorMessages = append(errorMessages, msg)
			} else {
				errorMessages = append(errorMessages, fmt.Sprintf("Field '%s' failed validation on the '%s' rule.", field, tag))
			}
		}
		return fmt.Sprintf("Validation errors: %v", errorMessages)
	}
	return "Invalid input."
}

// FormMessage returns the form text for a request building error, or the error itself.
func FormMessage(err error) string {
	for target, msg := range FormMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// baseField strips the slice index validator adds for dived elements, e.g. CoinDenominations[1].
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

// HandleValidationError handles validation errors and sends a custom response to the client.
func HandleValidationError(ctx *gin.Context, err error) {
	errorMessage := FormatValidationError(err)
	ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, errorMessage))
}
