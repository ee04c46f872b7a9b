// Package correlation кодирует идентификаторы продукта и бизнеса в примечание к платежу и обратно.
// Формат примечания: productID|businessID.
package correlation

import (
	"errors"
	"fmt"
	"strings"
)

const Delimiter = "|"

var ErrInvalidNote = errors.New("invalid transaction note")

type DecodeError struct {
	Note string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidNote.Error(), e.Note)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidNote
}

// Encode формирует примечание к платежу. Идентификаторы не должны содержать Delimiter.
func Encode(productID, businessID string) string {
	return productID + Delimiter + businessID
}

// Decode разбирает примечание на идентификаторы продукта и бизнеса. Возвращает *DecodeError, если примечание
// пустое или не состоит ровно из двух непустых частей. Сами идентификаторы не валидируются.
func Decode(note string) (string, string, error) {
	parts := strings.Split(note, Delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &DecodeError{Note: note}
	}
	return parts[0], parts[1], nil
}
