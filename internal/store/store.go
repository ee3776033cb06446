// Package store persists each record collection as one JSON array in its
// own file under the data directory.
//
// Reads parse the whole file and never fail: a missing or unparsable file
// yields the empty collection. Writes serialize and overwrite the whole
// file. There is no locking; two concurrent writers to the same collection
// race and the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// Collection file names under the data directory.
const (
	propertiesFile  = "properties.json"
	tenantsFile     = "tenants.json"
	leasesFile      = "leases.json"
	paymentsFile    = "payments.json"
	maintenanceFile = "maintenance.json"
)

// Store owns the data directory holding one JSON file per collection.
type Store struct {
	dir string
	log *logrus.Logger
}

// New creates a Store rooted at dir. The directory is created lazily on
// first save.
func New(dir string, log *logrus.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

// load reads a collection file into out. Missing and corrupt files both
// yield the empty collection; corruption is warn-logged.
func load[T any](s *Store, file string) []T {
	path := filepath.Join(s.dir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithError(err).WithField("path", path).Warn("reading collection")
		}

		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("parsing collection, starting empty")

		return []T{}
	}

	return records
}

// save serializes records and overwrites the collection file, creating the
// data directory if needed.
func save[T any](s *Store, file string, records []T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", file, err)
	}

	path := filepath.Join(s.dir, file)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Properties loads the property collection.
func (s *Store) Properties() []models.Property {
	return load[models.Property](s, propertiesFile)
}

// SaveProperties overwrites the property collection.
func (s *Store) SaveProperties(records []models.Property) error {
	return save(s, propertiesFile, records)
}

// Tenants loads the tenant collection.
func (s *Store) Tenants() []models.Tenant {
	return load[models.Tenant](s, tenantsFile)
}

// SaveTenants overwrites the tenant collection.
func (s *Store) SaveTenants(records []models.Tenant) error {
	return save(s, tenantsFile, records)
}

// Leases loads the lease collection.
func (s *Store) Leases() []models.Lease {
	return load[models.Lease](s, leasesFile)
}

// SaveLeases overwrites the lease collection.
func (s *Store) SaveLeases(records []models.Lease) error {
	return save(s, leasesFile, records)
}

// Payments loads the payment collection.
func (s *Store) Payments() []models.Payment {
	return load[models.Payment](s, paymentsFile)
}

// SavePayments overwrites the payment collection.
func (s *Store) SavePayments(records []models.Payment) error {
	return save(s, paymentsFile, records)
}

// Maintenance loads the maintenance-request collection.
func (s *Store) Maintenance() []models.MaintenanceRequest {
	return load[models.MaintenanceRequest](s, maintenanceFile)
}

// SaveMaintenance overwrites the maintenance-request collection.
func (s *Store) SaveMaintenance(records []models.MaintenanceRequest) error {
	return save(s, maintenanceFile, records)
}

// Empty reports whether no collection file exists yet.
func (s *Store) Empty() bool {
	for _, file := range []string{propertiesFile, tenantsFile, leasesFile, paymentsFile, maintenanceFile} {
		if _, err := os.Stat(filepath.Join(s.dir, file)); err == nil {
			return false
		}
	}

	return true
}
