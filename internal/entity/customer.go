package entity

import "strings"

// Campos obrigatórios para cadastrar cliente no Asaas
var CustomerRequiredFields = []string{"name", "email", "cpfCnpj"}

// Customer é o payload enviado ao Asaas. O Asaas diferencia campo ausente
// de string vazia, por isso todo campo vazio some do JSON.
type Customer struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	CpfCnpj       string `json:"cpfCnpj,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Address       string `json:"address,omitempty"`
	AddressNumber string `json:"addressNumber,omitempty"`
	Complement    string `json:"complement,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
}

// NewCustomer limpa o corpo recebido: telefone, documento e CEP ficam só com
// dígitos e qualquer campo fora da lista é descartado.
func NewCustomer(r Record) Customer {
	return Customer{
		Name:          r.String("name"),
		Email:         r.String("email"),
		Phone:         OnlyDigits(r.String("phone")),
		CpfCnpj:       OnlyDigits(r.String("cpfCnpj")),
		PostalCode:    OnlyDigits(r.String("postalCode")),
		Address:       r.String("address"),
		AddressNumber: r.String("addressNumber"),
		Complement:    r.String("complement"),
		Neighborhood:  r.String("neighborhood"),
		City:          r.String("city"),
		State:         r.String("state"),
	}
}

func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
