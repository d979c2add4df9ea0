package utils

import (
	"encoding/json"
	"log"

	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/repositories"
)

// LogAudit writes an audit entry. Failures are logged and swallowed so
// the audited action is never aborted by its side channel.
var LogAudit = func(repo repositories.AuditRepo, entityType string, entityID uint, action string, userID *uint, before, after any) {
	if repo == nil {
		return
	}

	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	audit := &models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		UserID:     userID,
		OldData:    oldData,
		NewData:    newData,
	}

	if err := repo.CreateAuditLog(audit); err != nil {
		log.Printf("Audit log write failed: %v", err)
	}
}
