package memory

import "medication-reminder/internal/platform/apperr"

var ErrNotFound = apperr.ErrNotFound
