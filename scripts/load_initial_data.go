package main

import (
	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database"
	"dispatch-portal-backend/internal/database/models"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string                 `yaml:"name"`
	Title       string                 `yaml:"title"`
	Domain      string                 `yaml:"domain"`
	Description string                 `yaml:"description"`
	Region      string                 `yaml:"region,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type TeamData struct {
	Name             string                 `yaml:"name"`
	OrganizationName string                 `yaml:"organization_name"`
	Title            string                 `yaml:"title"`
	Description      string                 `yaml:"description"`
	Email            string                 `yaml:"email,omitempty"`
	Color            string                 `yaml:"color,omitempty"`
	Metadata         map[string]interface{} `yaml:"metadata,omitempty"`
}

type WorkerData struct {
	OrganizationName string `yaml:"organization_name"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Email            string `yaml:"email"`
	PhoneNumber      string `yaml:"phone_number,omitempty"`
	ExternalAdminID  string `yaml:"external_admin_id,omitempty"`
	IsActive         bool   `yaml:"is_active"`
	TeamName         string `yaml:"team_name,omitempty"`
	TeamRole         string `yaml:"team_role,omitempty"`
}

type PublicHolidayData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Title            string `yaml:"title"`
	Date             string `yaml:"date"`
	Region           string `yaml:"region,omitempty"`
}

type WorkItemData struct {
	OrganizationName string `yaml:"organization_name"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description,omitempty"`
	AssigneeEmail    string `yaml:"assignee_email,omitempty"`
	DueDate          string `yaml:"due_date"`
	Status           string `yaml:"status,omitempty"`
	Priority         string `yaml:"priority,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type WorkersFile struct {
	Workers []WorkerData `yaml:"workers"`
}

type PublicHolidaysFile struct {
	PublicHolidays []PublicHolidayData `yaml:"public_holidays"`
}

type WorkItemsFile struct {
	WorkItems []WorkItemData `yaml:"work_items"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	workers, err := loadWorkers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	holidays, err := loadPublicHolidays(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load public holidays: %w", err)
	}

	workItems, err := loadWorkItems(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load work items: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create workers (optionally joining them to teams)
	workerMap := make(map[string]*models.Worker)
	workerCreated := 0
	for _, workerData := range workers {
		worker, created, err := createWorker(db, workerData, orgMap, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", workerData.Email, err)
		}
		workerMap[workerData.Email] = worker
		if created {
			workerCreated++
		}
	}
	log.Printf("📋 Workers: %d created, %d total", workerCreated, len(workers))

	// Create public holidays
	holidayCreated := 0
	for _, holidayData := range holidays {
		_, created, err := createPublicHoliday(db, holidayData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create public holiday %s: %v", holidayData.Name, err)
			continue // Continue with other holidays
		}
		if created {
			holidayCreated++
		}
	}
	log.Printf("📋 Public holidays: %d created, %d total", holidayCreated, len(holidays))

	// Create work items
	itemCreated := 0
	for _, itemData := range workItems {
		_, created, err := createWorkItem(db, itemData, orgMap, workerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create work item %s: %v", itemData.Title, err)
			continue // Continue with other work items
		}
		if created {
			itemCreated++
		}
	}
	log.Printf("📋 Work items: %d created, %d total", itemCreated, len(workItems))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadWorkers(dataDir string) ([]WorkerData, error) {
	var allWorkers []WorkerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "workers") {
			var file WorkersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allWorkers = append(allWorkers, file.Workers...)
		}
		return nil
	})

	return allWorkers, err
}

func loadPublicHolidays(dataDir string) ([]PublicHolidayData, error) {
	var allHolidays []PublicHolidayData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "holidays") {
			var file PublicHolidaysFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allHolidays = append(allHolidays, file.PublicHolidays...)
		}
		return nil
	})

	return allHolidays, err
}

func loadWorkItems(dataDir string) ([]WorkItemData, error) {
	var allItems []WorkItemData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "work_items") {
			var file WorkItemsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allItems = append(allItems, file.WorkItems...)
		}
		return nil
	})

	return allItems, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(orgData.Metadata)

			org = models.Organization{
				BaseModel: models.BaseModel{
					Name:        orgData.Name,
					Title:       orgData.Title,
					Description: orgData.Description,
					Metadata:    metadataJSON,
				},
				Domain: orgData.Domain,
				Region: orgData.Region,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, orgMap map[string]*models.Organization) (*models.Team, bool, error) {
	org := orgMap[teamData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for team %s", teamData.OrganizationName, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ? AND organization_id = ?", teamData.Name, org.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(teamData.Metadata)

			team = models.Team{
				BaseModel: models.BaseModel{
					Name:        teamData.Name,
					Title:       teamData.Title,
					Description: teamData.Description,
					Metadata:    metadataJSON,
				},
				OrganizationID: org.ID,
				Email:          teamData.Email,
				Color:          teamData.Color,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createWorker(db *gorm.DB, workerData WorkerData, orgMap map[string]*models.Organization, teamMap map[string]*models.Team) (*models.Worker, bool, error) {
	org := orgMap[workerData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for worker %s", workerData.OrganizationName, workerData.Email)
	}

	var teamID *uuid.UUID
	if workerData.TeamName != "" {
		if team := teamMap[workerData.TeamName]; team != nil {
			teamID = &team.ID
		} else {
			log.Printf("⚠️  Warning: team %s not found for worker %s", workerData.TeamName, workerData.Email)
		}
	}

	var worker models.Worker
	if err := db.Where("email = ?", workerData.Email).First(&worker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var externalAdminID *string
			if workerData.ExternalAdminID != "" {
				adminID := workerData.ExternalAdminID
				externalAdminID = &adminID
			}

			worker = models.Worker{
				BaseModel: models.BaseModel{
					Name:  emailHandle(workerData.Email),
					Title: workerData.FirstName + " " + workerData.LastName,
				},
				OrganizationID:  org.ID,
				FirstName:       workerData.FirstName,
				LastName:        workerData.LastName,
				Email:           workerData.Email,
				PhoneNumber:     workerData.PhoneNumber,
				ExternalAdminID: externalAdminID,
				IsActive:        workerData.IsActive,
			}

			if err := db.Create(&worker).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create worker: %w", err)
			}

			// Join the worker to its team if one was named
			if teamID != nil {
				role := models.TeamRoleTechnician
				if workerData.TeamRole != "" {
					role = models.TeamRole(workerData.TeamRole)
				}
				membership := models.TeamMembership{
					BaseModel: models.BaseModel{
						Name:  emailHandle(workerData.Email),
						Title: worker.FullName(),
					},
					TeamID:   *teamID,
					WorkerID: worker.ID,
					Role:     role,
				}
				if err := db.Where("team_id = ? AND worker_id = ?", *teamID, worker.ID).FirstOrCreate(&membership, membership).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create team membership: %v", err)
				}
			}
			return &worker, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query worker: %w", err)
		}
	}

	return &worker, false, nil // created = false (existing)
}

func createPublicHoliday(db *gorm.DB, holidayData PublicHolidayData, orgMap map[string]*models.Organization) (*models.PublicHoliday, bool, error) {
	org := orgMap[holidayData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for public holiday %s", holidayData.OrganizationName, holidayData.Name)
	}

	date, err := time.Parse("2006-01-02", holidayData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q for public holiday %s: %w", holidayData.Date, holidayData.Name, err)
	}

	var region *string
	if holidayData.Region != "" {
		r := holidayData.Region
		region = &r
	}

	var holiday models.PublicHoliday
	query := db.Where("organization_id = ? AND date = ?", org.ID, date)
	if region != nil {
		query = query.Where("region = ?", *region)
	} else {
		query = query.Where("region IS NULL")
	}
	if err := query.First(&holiday).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			holiday = models.PublicHoliday{
				BaseModel: models.BaseModel{
					Name:  holidayData.Name,
					Title: holidayData.Title,
				},
				OrganizationID: org.ID,
				Date:           date,
				Region:         region,
			}

			if err := db.Create(&holiday).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create public holiday: %w", err)
			}
			return &holiday, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query public holiday: %w", err)
		}
	}

	return &holiday, false, nil // created = false (existing)
}

func createWorkItem(db *gorm.DB, itemData WorkItemData, orgMap map[string]*models.Organization, workerMap map[string]*models.Worker) (*models.WorkItem, bool, error) {
	org := orgMap[itemData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for work item %s", itemData.OrganizationName, itemData.Title)
	}

	dueDate, err := time.Parse("2006-01-02", itemData.DueDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid due date %q for work item %s: %w", itemData.DueDate, itemData.Title, err)
	}

	var assigneeID *uuid.UUID
	if itemData.AssigneeEmail != "" {
		if worker := workerMap[itemData.AssigneeEmail]; worker != nil {
			assigneeID = &worker.ID
		} else {
			log.Printf("⚠️  Warning: assignee %s not found for work item %s", itemData.AssigneeEmail, itemData.Title)
		}
	}

	var item models.WorkItem
	if err := db.Where("title = ? AND organization_id = ? AND due_date = ?", itemData.Title, org.ID, dueDate).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.WorkItemStatusOpen
			if itemData.Status != "" {
				status = models.WorkItemStatus(itemData.Status)
			}

			priority := models.WorkItemPriorityMedium
			if itemData.Priority != "" {
				priority = models.WorkItemPriority(itemData.Priority)
			}

			item = models.WorkItem{
				BaseModel: models.BaseModel{
					Name:        itemHandle(itemData.Title),
					Title:       itemData.Title,
					Description: itemData.Description,
				},
				OrganizationID: org.ID,
				AssigneeID:     assigneeID,
				DueDate:        dueDate,
				Status:         status,
				Priority:       priority,
			}

			if err := db.Create(&item).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create work item: %w", err)
			}
			return &item, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query work item: %w", err)
		}
	}

	return &item, false, nil // created = false (existing)
}

// emailHandle derives a short readable name from the local part of an email.
func emailHandle(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)
	if len(local) > 40 {
		local = local[:40]
	}
	return local
}

// itemHandle derives a short readable name from a work item title.
func itemHandle(title string) string {
	handle := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	if len(handle) > 40 {
		handle = handle[:40]
	}
	return handle
}
