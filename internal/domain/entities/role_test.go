package entities

import "testing"

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{name: "admin é válido", role: RoleAdmin, expected: true},
		{name: "editor é válido", role: RoleEditor, expected: true},
		{name: "role desconhecido é inválido", role: Role("superuser"), expected: false},
		{name: "role vazio é inválido", role: Role(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, got)
			}
		})
	}
}

func TestRole_Covers(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		expected bool
	}{
		{name: "admin cobre admin", role: RoleAdmin, required: RoleAdmin, expected: true},
		{name: "admin cobre editor", role: RoleAdmin, required: RoleEditor, expected: true},
		{name: "editor cobre editor", role: RoleEditor, required: RoleEditor, expected: true},
		{name: "editor não cobre admin", role: RoleEditor, required: RoleAdmin, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Covers(tt.required); got != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, got)
			}
		})
	}
}
