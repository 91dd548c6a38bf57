// Package table contiene el modelo de las tablas configurables del tablero
// (ventas, contactos): catálogo de columnas, preferencias por usuario y cliente,
// y el pipeline filtrar → ordenar → paginar → proyectar.
//
// Todas las funciones son puras: nunca modifican los slices recibidos y
// siempre devuelven slices nuevos.
package table
