package store

// Storages aggregates every repository the services depend on.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	ContactRepository ContactRepository
	FieldUpgrader     FieldUpgrader
	Capabilities      Capabilities
}

// NewStorages builds all repositories over one connection and one set of
// probed capabilities.
func NewStorages(db *DB, caps Capabilities) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, caps, db.logger),
		SessionRepository: NewSessionRepository(db, caps, db.logger),
		ContactRepository: NewContactRepository(db, caps, db.logger),
		FieldUpgrader:     NewFieldUpgrader(db, db.logger),
		Capabilities:      caps,
	}
}
