package entity

// Cobranças e assinaturas são repassadas sem alteração; só a presença
// destes campos é conferida antes de chamar o Asaas.
var (
	PaymentRequiredFields      = []string{"customer", "value", "dueDate"}
	SubscriptionRequiredFields = []string{"customer", "value", "nextDueDate"}
)

// WebhookEvent guarda só o que é logado na notificação do Asaas.
// O corpo completo segue em Raw para quem for tratar o evento.
type WebhookEvent struct {
	Event     string
	PaymentID string
	Raw       Record
}

func NewWebhookEvent(r Record) WebhookEvent {
	ev := WebhookEvent{Event: r.String("event"), Raw: r}
	if payment, ok := r["payment"].(map[string]any); ok {
		ev.PaymentID = Record(payment).String("id")
	}
	return ev
}
