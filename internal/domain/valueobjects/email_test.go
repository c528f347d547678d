package valueobjects

import "testing"

func TestNewEmail(t *testing.T) {
	t.Run("normaliza para minúsculas e remove espaços", func(t *testing.T) {
		email, err := NewEmail("  Admin@Example.COM  ")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if email.String() != "admin@example.com" {
			t.Errorf("esperava 'admin@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalid := []string{
			"",
			"not-an-email",
			"@example.com",
			"user@",
			"user@domain",
		}

		for _, input := range invalid {
			if _, err := NewEmail(input); err == nil {
				t.Errorf("esperava erro para '%s'", input)
			}
		}
	})

	t.Run("aceita formatos comuns", func(t *testing.T) {
		valid := []string{
			"user@example.com",
			"first.last@example.com",
			"user+tag@example.co.uk",
		}

		for _, input := range valid {
			if _, err := NewEmail(input); err != nil {
				t.Errorf("esperava sucesso para '%s', obteve %v", input, err)
			}
		}
	})
}
