package domain

import "time"

type Cliente struct {
	ID           int64     `json:"id"`
	Codigo       string    `json:"codigo"`
	Nome         string    `json:"nome"`
	NomeFantasia *string   `json:"nome_fantasia"`
	Telefone     *string   `json:"telefone"`
	Whatsapp     *string   `json:"whatsapp"`
	CriadoEm     time.Time `json:"criado_em"`
}
