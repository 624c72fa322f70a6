package album

import "github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"

func SetTokenSource(s *Service, next func() (valueobject.ShareToken, error)) {
	s.newToken = next
}
