package types

// MessageType classifies entries in the per-slot game log.
type MessageType string

const (
	MessageCombat      MessageType = "combat"
	MessagePurchase    MessageType = "purchase"
	MessageSale        MessageType = "sale"
	MessageRandomEvent MessageType = "random_event"
	MessageInfo        MessageType = "info"
)

// Message is one entry in the append-only game log. The log is persisted
// alongside the game state in the same save slot.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"`
}

// ValidMessage is the structural check used by the self-healing log read.
func ValidMessage(m Message) bool {
	return m.Type != "" && m.Content != ""
}
