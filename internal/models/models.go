package models

import "time"

// ============================================
// Auth DTOs
// ============================================

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Success bool   `json:"success"`
}

type VerifyResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	Client      string   `json:"client"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	PlanView    string   `json:"plan_view"`
	HasPlanView bool     `json:"has_plan_view"`
}

// UpdateProjectRequest carries the full replacement state; updates are not
// partial patches.
type UpdateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	Client      string   `json:"client"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	PlanView    string   `json:"plan_view"`
	HasPlanView bool     `json:"has_plan_view"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        string    `json:"year"`
	Client      string    `json:"client"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	PlanView    string    `json:"plan_view"`
	HasPlanView bool      `json:"has_plan_view"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ============================================
// Portfolio Bio DTOs
// ============================================

type UpdateBioRequest struct {
	BioText    string `json:"bio_text"`
	BioEnabled bool   `json:"bio_enabled"`
}

type BioResponse struct {
	ID         string    `json:"id"`
	BioText    string    `json:"bio_text"`
	BioEnabled bool      `json:"bio_enabled"`
	UpdatedAt  time.Time `json:"updated_at"`
}
