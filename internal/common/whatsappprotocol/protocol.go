package whatsappprotocol

const (
	SetFieldValue ActionType = "set_field_value"
	SendFlow      ActionType = "send_flow"
)

const (
	OrderNumberField = "order_number"
	OrderPriceField  = "order_price"
)

type ActionType string

// Action is one typed instruction in a contact request. set_field_value
// binds template data, send_flow triggers delivery; the gateway executes
// them in order.
type Action struct {
	Action    ActionType `json:"action"`
	FieldName string     `json:"field_name,omitempty"`
	Value     any        `json:"value,omitempty"`
	FlowID    int        `json:"flow_id,omitempty"`
}

// Contact is the gateway's contact-upsert payload. Email and LastName are
// always present on the wire, empty when unknown.
type Contact struct {
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Actions   []Action `json:"actions"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
