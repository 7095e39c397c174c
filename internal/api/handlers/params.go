package handlers

import (
	"net/http"
	"strconv"
)

// QueryBool читает булев query параметр, отсутствующий параметр дает false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// QueryInt читает целый query параметр, отсутствующий параметр дает fallback
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
