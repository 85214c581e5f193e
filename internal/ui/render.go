package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"estoque/internal/model"
)

// Messages shown for the non-table states.
const (
	LoadingMessage = "Carregando..."
	EmptyMessage   = "Nenhum produto cadastrado ainda."
)

// Render writes s to w. It has no side effects beyond writing.
func Render(w io.Writer, s State) error {
	if s.Err != nil {
		if _, err := fmt.Fprintf(w, "Erro: %s\n", s.Err); err != nil {
			return err
		}
	}

	switch {
	case s.Loading:
		if _, err := fmt.Fprintln(w, LoadingMessage); err != nil {
			return err
		}
	case len(s.Products) == 0:
		if _, err := fmt.Fprintln(w, EmptyMessage); err != nil {
			return err
		}
	default:
		if err := RenderTable(w, s.Products); err != nil {
			return err
		}
	}

	if s.Form != nil {
		return renderForm(w, s.Form)
	}
	return nil
}

// RenderTable writes products as an aligned table. Out-of-stock rows are
// prefixed with "!".
func RenderTable(w io.Writer, products []model.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Nome\tTipo\tQuantidade\tStatus\tID")
	for _, p := range products {
		marker := " "
		if p.OutOfStock {
			marker = "!"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%d\t%s\t%d\n", marker, p.Name, KindLabel(p.Kind), p.Quantity, StatusLabel(p.OutOfStock), p.ID)
	}
	return tw.Flush()
}

// KindLabel returns the display name of k.
func KindLabel(k model.Kind) string {
	switch k {
	case model.KindFrozen:
		return "Congelada"
	case model.KindFresh:
		return "Fresca"
	default:
		return string(k)
	}
}

// StatusLabel returns the display text of the out-of-stock flag.
func StatusLabel(outOfStock bool) string {
	if outOfStock {
		return "Esgotado"
	}
	return "Em estoque"
}

func renderForm(w io.Writer, f *Form) error {
	title := "Novo Produto"
	if f.Editing() {
		title = fmt.Sprintf("Editar Produto #%d", *f.EditingID)
	}

	outOfStock := "não"
	if f.Draft.OutOfStock {
		outOfStock = "sim"
	}

	_, err := fmt.Fprintf(w, "\n%s\n  Nome: %s\n  Tipo: %s\n  Quantidade: %d\n  Esgotado: %s\n",
		title, f.Draft.Name, KindLabel(f.Draft.Kind), f.Draft.Quantity, outOfStock)
	return err
}
