package services

import (
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) Query(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.repos.Audit.GetAuditLogs(params)
}
