package entity

import "golang.org/x/text/cases"

// FoldKey normaliza un texto para comparaciones sin distinción de mayúsculas (nombres, usernames, emails).
// cases.Caser no es seguro entre goroutines: se crea uno por llamada.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// SameFold compara dos textos sin distinguir mayúsculas.
func SameFold(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}
