package textgen

import "context"

// Request es el prompt ya armado para el generador de texto.
type Request struct {
	System string
	Prompt string
}

// Generator es el colaborador externo de generación de texto.
// Devuelve el texto crudo; quien llama valida el formato.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
