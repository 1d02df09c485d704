package dao

import "gorm.io/gorm"

// InitTables provisions the schema on startup. AutoMigrate is idempotent and
// additive: it never drops tables or columns that already hold data.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Person{},
		&PersonContact{},
		&PersonRole{},
		&PersonDocument{},
		&Organization{},
		&Event{},
		&EventOrgCollaborator{},
		&EventPersonCollaborator{},
		&EventParticipant{},
		&Application{},
		&ApplicationDocument{},
		&Payment{},
	)
}
