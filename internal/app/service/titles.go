package service

import (
	"strings"

	"nestodo/internal/core/domain"
)

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.ErrEmptyTitle
	}
	return title, nil
}
