package webhook

import (
	"bytes"
	"encoding/json"
)

// EventKind закрытый набор событий провайдера. Все, что не распознано, - EventUnknown.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventPaymentCaptured
	EventPaymentFailed
)

const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
)

func ParseEventKind(event string) EventKind {
	switch event {
	case eventPaymentCaptured:
		return EventPaymentCaptured
	case eventPaymentFailed:
		return EventPaymentFailed
	default:
		return EventUnknown
	}
}

func (k EventKind) String() string {
	switch k {
	case EventPaymentCaptured:
		return eventPaymentCaptured
	case EventPaymentFailed:
		return eventPaymentFailed
	case EventUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// envelope тело вебхука. Из события нужны только поля сущности платежа.
type envelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type paymentEntity struct {
	ID           string       `json:"id"`
	Amount       int64        `json:"amount"`
	Currency     string       `json:"currency"`
	Description  string       `json:"description"`
	Notes        paymentNotes `json:"notes"`
	AcquirerData struct {
		UPITransactionID string `json:"upi_transaction_id"`
		RRN              string `json:"rrn"`
	} `json:"acquirer_data"`
}

// transactionNote примечание с идентификаторами продукта и бизнеса. Если в notes его нет, используется
// описание платежа.
func (e paymentEntity) transactionNote() string {
	if e.Notes.TransactionNote != "" {
		return e.Notes.TransactionNote
	}
	return e.Description
}

type paymentNotes struct {
	TransactionNote string `json:"transaction_note"`
}

// UnmarshalJSON пустые notes провайдер присылает массивом [], такие notes считаются пустыми.
func (n *paymentNotes) UnmarshalJSON(data []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		*n = paymentNotes{}
		return nil
	}
	type plain paymentNotes
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err //nolint:wrapcheck
	}
	*n = paymentNotes(p)
	return nil
}
