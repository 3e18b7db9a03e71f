// Package database persists canonical job postings into a hosted Postgres
// (Supabase) table keyed by fingerprint, with array columns for the
// multi-sourced list fields. One row per logical job: repeated sightings
// merge into the existing row instead of inserting duplicates.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"au-jobs-scraper/internal/fingerprint"
	"au-jobs-scraper/internal/models"
)

const (
	StatusInserted = "inserted"
	StatusUpdated  = "updated"
)

// UpsertResult reports what UpsertJob did.
type UpsertResult struct {
	ID     string
	Status string
}

type Repository struct {
	db *pgxpool.Pool

	// Serializes read-merge-write per fingerprint within this process.
	upsertLocks *keyedMutex
}

// Connect opens a pool against the hosted database.
func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// Supabase's connection pooler (PgBouncer in transaction mode) does not
	// support prepared statements, so the statement cache must stay off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool, upsertLocks: newKeyedMutex()}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

const jobColumns = `id, fingerprint, job_title, job_role, company, description,
	locations, source_urls, platforms, salary_min, salary_max,
	seniority, posted_at, closing_date, llm_analysis, created_at, updated_at`

// UpsertJob inserts a new posting or merges it into the existing row with
// the same fingerprint. The candidate's fingerprint is computed from raw
// title + company if not already set.
func (r *Repository) UpsertJob(ctx context.Context, job *models.JobPosting) (*UpsertResult, error) {
	if errs := job.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid job posting: %v", errs)
	}
	if job.Fingerprint == "" {
		job.Fingerprint = fingerprint.Generate(job.Company, job.JobTitle)
	}

	unlock := r.upsertLocks.Lock(job.Fingerprint)
	defer unlock()

	existing, err := r.GetByFingerprint(ctx, job.Fingerprint)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		id, err := r.insert(ctx, job)
		if err != nil {
			return nil, err
		}
		if id != "" {
			return &UpsertResult{ID: id, Status: StatusInserted}, nil
		}
		// Another writer (possibly another process) inserted this
		// fingerprint between the read and the write: merge instead.
		existing, err = r.GetByFingerprint(ctx, job.Fingerprint)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("fingerprint %s vanished during upsert", job.Fingerprint)
		}
	}

	merged := MergeJob(existing, job)
	if err := r.update(ctx, existing.ID, &merged); err != nil {
		return nil, err
	}
	return &UpsertResult{ID: existing.ID, Status: StatusUpdated}, nil
}

func (r *Repository) insert(ctx context.Context, job *models.JobPosting) (string, error) {
	locationsJSON, analysisJSON, err := marshalJSONFields(job)
	if err != nil {
		return "", err
	}
	salaryMin, salaryMax := salaryBounds(job.Salary)

	var id string
	err = r.db.QueryRow(ctx, `
		INSERT INTO job_postings
			(fingerprint, job_title, job_role, company, description,
			 locations, source_urls, platforms, salary_min, salary_max,
			 seniority, posted_at, closing_date, llm_analysis,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
		ON CONFLICT (fingerprint) DO NOTHING
		RETURNING id`,
		job.Fingerprint, job.JobTitle, job.JobRole, job.Company, job.Description,
		locationsJSON, job.SourceURLs, job.Platforms, salaryMin, salaryMax,
		textOrNil(job.Seniority), textOrNil(job.PostedAt), textOrNil(job.ClosingDate), analysisJSON,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil // conflicting fingerprint won the race
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert job: %w", err)
	}
	return id, nil
}

func (r *Repository) update(ctx context.Context, id string, job *models.JobPosting) error {
	locationsJSON, analysisJSON, err := marshalJSONFields(job)
	if err != nil {
		return err
	}
	salaryMin, salaryMax := salaryBounds(job.Salary)

	_, err = r.db.Exec(ctx, `
		UPDATE job_postings SET
			job_title = $1, job_role = $2, company = $3, description = $4,
			locations = $5, source_urls = $6, platforms = $7,
			salary_min = $8, salary_max = $9,
			seniority = $10, posted_at = $11, closing_date = $12,
			llm_analysis = $13, updated_at = now()
		WHERE id = $14`,
		job.JobTitle, job.JobRole, job.Company, job.Description,
		locationsJSON, job.SourceURLs, job.Platforms, salaryMin, salaryMax,
		textOrNil(job.Seniority), textOrNil(job.PostedAt), textOrNil(job.ClosingDate), analysisJSON,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", id, err)
	}
	return nil
}

// GetByFingerprint fetches the single row for a fingerprint, or nil when the
// fingerprint is unknown.
func (r *Repository) GetByFingerprint(ctx context.Context, fp string) (*models.StoredJob, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE fingerprint = $1`, fp)
	job, err := scanStoredJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job by fingerprint: %w", err)
	}
	return job, nil
}

// CheckDuplicateByFingerprint is the fast path for callers that only need to
// know whether a (company, title) pair is already stored. Returns the row ID
// or "" when no duplicate exists.
func (r *Repository) CheckDuplicateByFingerprint(ctx context.Context, company, title string) (string, error) {
	fp := fingerprint.Generate(company, title)
	var id string
	err := r.db.QueryRow(ctx,
		`SELECT id FROM job_postings WHERE fingerprint = $1`, fp).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to check duplicate: %w", err)
	}
	return id, nil
}

// UpdateDuplicateJob merges only the list fields of a known duplicate:
// callers that already hold the row ID use this to record an extra sighting
// without re-sending the full record.
func (r *Repository) UpdateDuplicateJob(ctx context.Context, jobID string, locations []models.Location, sourceURL, platform string) error {
	// A stored row's fingerprint never changes, so it is safe to resolve
	// before locking. The merge base itself must be read inside the critical
	// section, or a concurrent upsert's list additions would be overwritten.
	var fp string
	if err := r.db.QueryRow(ctx,
		`SELECT fingerprint FROM job_postings WHERE id = $1`, jobID).Scan(&fp); err != nil {
		return fmt.Errorf("failed to resolve fingerprint for %s: %w", jobID, err)
	}

	unlock := r.upsertLocks.Lock(fp)
	defer unlock()

	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, jobID)
	existing, err := scanStoredJob(row)
	if err != nil {
		return fmt.Errorf("failed to load job %s: %w", jobID, err)
	}

	mergedLocs := MergeLocations(existing.Locations, locations)
	mergedURLs := MergeStrings(existing.SourceURLs, []string{sourceURL})
	mergedPlatforms := MergeStrings(existing.Platforms, []string{platform})

	locationsJSON, err := json.Marshal(mergedLocs)
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		UPDATE job_postings SET
			locations = $1, source_urls = $2, platforms = $3, updated_at = now()
		WHERE id = $4`,
		locationsJSON, mergedURLs, mergedPlatforms, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update duplicate %s: %w", jobID, err)
	}
	return nil
}

// CheckExistingURLs returns the subset of urls already recorded on any row.
// With onlyComplete set, rows without a posted_at are ignored so incomplete
// postings get re-scraped.
func (r *Repository) CheckExistingURLs(ctx context.Context, urls []string, onlyComplete bool) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	query := `SELECT source_urls FROM job_postings WHERE source_urls && $1`
	if onlyComplete {
		query += ` AND posted_at IS NOT NULL`
	}

	rows, err := r.db.Query(ctx, query, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing urls: %w", err)
	}
	defer rows.Close()

	wanted := make(map[string]bool, len(urls))
	for _, u := range urls {
		wanted[u] = true
	}

	var existing []string
	seen := make(map[string]bool)
	for rows.Next() {
		var rowURLs []string
		if err := rows.Scan(&rowURLs); err != nil {
			return nil, fmt.Errorf("failed to scan source_urls: %w", err)
		}
		for _, u := range rowURLs {
			if wanted[u] && !seen[u] {
				seen[u] = true
				existing = append(existing, u)
			}
		}
	}
	return existing, rows.Err()
}

// UpdateLLMAnalysis stores the analyzer output for a job.
func (r *Repository) UpdateLLMAnalysis(ctx context.Context, jobID string, analysis map[string]any) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`UPDATE job_postings SET llm_analysis = $1, updated_at = now() WHERE id = $2`,
		analysisJSON, jobID)
	if err != nil {
		return fmt.Errorf("failed to update llm analysis for %s: %w", jobID, err)
	}
	return nil
}

// GetRecentJobs returns the most recently created rows.
func (r *Repository) GetRecentJobs(ctx context.Context, limit int) ([]models.StoredJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.StoredJob
	for rows.Next() {
		job, err := scanStoredJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanStoredJob(row pgx.Row) (*models.StoredJob, error) {
	var (
		job           models.StoredJob
		locationsJSON []byte
		analysisJSON  []byte
		salaryMin     *float64
		salaryMax     *float64
		seniority     *string
		postedAt      *string
		closingDate   *string
	)
	err := row.Scan(
		&job.ID, &job.Fingerprint, &job.JobTitle, &job.JobRole, &job.Company, &job.Description,
		&locationsJSON, &job.SourceURLs, &job.Platforms, &salaryMin, &salaryMax,
		&seniority, &postedAt, &closingDate, &analysisJSON, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(locationsJSON) > 0 {
		if err := json.Unmarshal(locationsJSON, &job.Locations); err != nil {
			return nil, fmt.Errorf("failed to decode locations: %w", err)
		}
	}
	if len(analysisJSON) > 0 {
		if err := json.Unmarshal(analysisJSON, &job.LLMAnalysis); err != nil {
			return nil, fmt.Errorf("failed to decode llm_analysis: %w", err)
		}
	}
	if salaryMin != nil && salaryMax != nil {
		job.Salary = &models.SalaryRange{AnnualMin: *salaryMin, AnnualMax: *salaryMax}
	}
	job.Seniority = deref(seniority)
	job.PostedAt = deref(postedAt)
	job.ClosingDate = deref(closingDate)
	return &job, nil
}

func marshalJSONFields(job *models.JobPosting) (locations, analysis []byte, err error) {
	locations, err = json.Marshal(job.Locations)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal locations: %w", err)
	}
	if job.LLMAnalysis != nil {
		analysis, err = json.Marshal(job.LLMAnalysis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal llm_analysis: %w", err)
		}
	}
	return locations, analysis, nil
}

func salaryBounds(s *models.SalaryRange) (min, max *float64) {
	if s == nil {
		return nil, nil
	}
	return &s.AnnualMin, &s.AnnualMax
}

func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
