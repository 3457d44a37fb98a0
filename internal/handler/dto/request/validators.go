package request

import (
	"reflect"
	"strings"
	"sync"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/pkg/randcode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator:
//
//	claimcode  8-character claim code (case-insensitive)
//	pincode    6-character vendor PIN (case-insensitive)
//	paymethod  supported payment method
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonTagName)
		if err = v.RegisterValidation("claimcode", codeValidator(claim.CodeLength)); err != nil {
			return
		}
		if err = v.RegisterValidation("pincode", codeValidator(deal.VerificationCodeLength)); err != nil {
			return
		}
		err = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
			return transaction.PaymentMethod(fl.Field().String()).IsValid()
		})
	})
	return err
}

func codeValidator(length int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return randcode.IsValid(randcode.Normalize(fl.Field().String()), length)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
