package domain

import "time"

// ClientType distinguishes individuals from companies.
type ClientType string

const (
	ClientTypePessoaFisica   ClientType = "PESSOA_FISICA"
	ClientTypePessoaJuridica ClientType = "PESSOA_JURIDICA"
)

// Client is a represented party. Document holds CPF or CNPJ.
type Client struct {
	ID           string
	Name         string
	Email        *string
	Phone        *string
	Document     string
	Type         ClientType
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Notes        *string
	Active       bool
	ProcessCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
