package utils

import (
	"log"
	"time"

	"folio/database"
	"folio/models"

	"github.com/robfig/cron/v3"
)

// InitializeMaintenanceScheduler sets up the daily database maintenance job
func InitializeMaintenanceScheduler() {
	log.Println("[MAINTENANCE-SCHEDULER] Initializing maintenance scheduler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		log.Println("[MAINTENANCE-SCHEDULER] Running daily maintenance...")
		PurgeOldLoginHistory()
		PurgeSoftDeletedRows()
	})

	c.Start()
	log.Println("[MAINTENANCE-SCHEDULER] Maintenance scheduler started - runs daily at 2 AM")
}

// PurgeOldLoginHistory deletes login tracking rows older than 90 days
func PurgeOldLoginHistory() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -90)

	result := db.Unscoped().
		Where("timestamp < ?", cutoff).
		Delete(&models.LoginTracking{})
	if result.Error != nil {
		log.Printf("[MAINTENANCE-SCHEDULER] Error purging login history: %v", result.Error)
		return
	}

	log.Printf("[MAINTENANCE-SCHEDULER] Purged %d login history rows", result.RowsAffected)
}

// PurgeSoftDeletedRows hard-deletes rows flagged is_deleted. Transactions go
// first so client rows are never removed while transactions still point at
// them.
func PurgeSoftDeletedRows() {
	db := database.Database.Db

	for _, model := range []interface{}{
		&models.Transaction{},
		&models.Client{},
		&models.Broker{},
		&models.Stock{},
	} {
		result := db.Unscoped().Where("is_deleted = ?", true).Delete(model)
		if result.Error != nil {
			log.Printf("[MAINTENANCE-SCHEDULER] Error purging soft-deleted rows: %v", result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			log.Printf("[MAINTENANCE-SCHEDULER] Purged %d soft-deleted rows (%T)", result.RowsAffected, model)
		}
	}
}
