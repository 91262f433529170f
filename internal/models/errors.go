package models

import "errors"

// The error messages are part of the wire contract: the web UI displays
// them verbatim, so they are written in the language of the end users.
var (
	ErrGeneral = errors.New("Ocorreu um erro no servidor durante a sua requisição")

	ErrPersonNotFound      = errors.New("Pessoa não encontrada")
	ErrCategoryNotFound    = errors.New("Categoria não encontrada")
	ErrTransactionNotFound = errors.New("Transação não encontrada")

	ErrMinorIncome         = errors.New("Menor de idade só pode registrar despesas")
	ErrIncompatiblePurpose = errors.New("Tipo da transação não compatível com finalidade da categoria")

	ErrNameMissing        = errors.New("O nome da pessoa deve ser informado")
	ErrDescriptionMissing = errors.New("A descrição deve ser informada")
	ErrAmountNotPositive  = errors.New("O valor da transação deve ser maior que zero")
	ErrInvalidType        = errors.New("Tipo de transação inválido")
	ErrInvalidPurpose     = errors.New("Finalidade da categoria inválida")
)

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
