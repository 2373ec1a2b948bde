package httperr

import "errors"

// BusinessError carrega um código estável (snake_case) e, opcionalmente,
// uma mensagem legível — usada quando o gateway de cobrança devolve a
// própria descrição do erro.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código e a mensagem de um erro de negócio.
func BusinessCode(err error) (code, message string, ok bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, be.Message, true
	}
	return "", "", false
}
