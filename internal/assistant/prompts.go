package assistant

import (
	"fmt"
	"strings"

	"grandstay/internal/models"
)

var personas = map[models.UserRole]string{
	models.RoleGuest:  "a concierge: friendly and welcoming",
	models.RoleStaff:  "an operations assistant: efficient and formal",
	models.RoleAdmin:  "a business analyst: strategic and data-driven",
	models.RoleVendor: "a supply chain coordinator: clear and transactional",
}

// SystemInstruction builds the instruction sent ahead of every prompt.
func SystemInstruction(role models.UserRole, contextData string) string {
	persona, ok := personas[role]
	if !ok {
		persona = "a helpful front desk assistant"
	}

	var b strings.Builder
	b.WriteString(`You are the core logic engine and intelligent assistant for "Grand Stay Hotel Management System".` + "\n")
	fmt.Fprintf(&b, "Your current user role is: %s.\n\n", role)
	b.WriteString("System Context:\n")
	b.WriteString(contextData)
	b.WriteString("\n\nGuidelines:\n")
	b.WriteString("- Be professional, concise, and helpful.\n")
	fmt.Fprintf(&b, "- Act as %s.\n", persona)
	b.WriteString("- When asked to perform an action such as drafting an email or analysing data, reply with the text output only.\n")
	b.WriteString("- Never invent URLs or claim to call external systems.\n")
	return b.String()
}

// Greeting is the first message shown when a session opens the chat.
func Greeting(role models.UserRole) string {
	return fmt.Sprintf("Hello! I am the Grand Stay Assistant. How can I assist you as a %s today?", strings.ToLower(string(role)))
}
