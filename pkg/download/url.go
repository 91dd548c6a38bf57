// Package download construye los enlaces de descarga de reportes generados en el servidor.
package download

import (
	"net/url"
	"strings"
)

// URL une la base de la API con la ruta devuelta por el endpoint de reportes
// y agrega el token como parámetro de consulta, usando "?" o "&" según corresponda.
// Un token vacío no se agrega.
func URL(apiBase, path, token string) string {
	base := strings.TrimRight(apiBase, "/")
	p := strings.TrimLeft(path, "/")
	link := p
	if base != "" {
		link = base + "/" + p
	}
	if token == "" {
		return link
	}
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + "token=" + url.QueryEscape(token)
}

// ContentDisposition valor de Content-Disposition para descargar name (RFC 6266).
// Nombres no ASCII llevan además filename* en UTF-8 y un respaldo ASCII en filename.
func ContentDisposition(name string) string {
	fallback := asciiName(name)
	v := `attachment; filename="` + fallback + `"`
	if fallback != name {
		v += "; filename*=UTF-8''" + encodeExtValue(name)
	}
	return v
}

func asciiName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

// encodeExtValue codifica con %XX todo byte fuera de attr-char (RFC 8187).
func encodeExtValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
