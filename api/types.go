// Package api contains the request and response shapes of the HTTP surface.
package api

import "time"

// ErrorResponse is the generic error body returned by every endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// --- auth ---

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,password"`
	FirstName string  `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string  `json:"lastName" validate:"required,min=2,max=50"`
	Age       *int    `json:"age" validate:"omitempty,min=15,max=80"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	User    LoginUser `json:"user"`
	Access  string    `json:"access"`
	Refresh string    `json:"refresh"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

// --- users ---

type UserResponse struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       *int      `json:"age,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	AvatarUrl *string   `json:"avatarUrl,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Age       *int    `json:"age" validate:"omitempty,min=15,max=80"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
	AvatarUrl *string `json:"avatarUrl" validate:"omitempty,url"`
}

// --- catalog ---

// NamedEntity is a reference to a country or genre with its localized name.
type NamedEntity struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type PersonSummary struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type PersonDetail struct {
	Id          int            `json:"id"`
	Name        string         `json:"name"`
	Bio         string         `json:"bio"`
	Born        string         `json:"born"`
	PortraitUrl string         `json:"portraitUrl"`
	Movies      []MovieSummary `json:"movies"`
}

type CountryDetail struct {
	Id     int            `json:"id"`
	Name   string         `json:"name"`
	Movies []MovieSummary `json:"movies"`
}

type GenreDetail struct {
	Id     int            `json:"id"`
	Name   string         `json:"name"`
	Movies []MovieSummary `json:"movies"`
}

// --- movies ---

// GetMoviesParams caps Page so the computed row offset stays far away from
// integer overflow.
type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1,max=1000000"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Term     *string `validate:"omitempty,max=100"`
	Sort     *string `validate:"omitempty,oneof=year -year id -id"`
	YearFrom *int    `validate:"omitempty,min=1888"`
	YearTo   *int    `validate:"omitempty,min=1888"`
	Genre    *int    `validate:"omitempty,min=1"`
	Country  *int    `validate:"omitempty,min=1"`
}

// MovieSummary is the list-view shape: year only, countries and genres
// resolved to localized names.
type MovieSummary struct {
	Id        int           `json:"id"`
	PosterUrl string        `json:"posterUrl"`
	Name      string        `json:"name"`
	Year      string        `json:"year"`
	Countries []NamedEntity `json:"countries"`
	Genres    []NamedEntity `json:"genres"`
	Status    string        `json:"status"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata"`
}

type LanguageTrack struct {
	Language string `json:"language"`
	VideoUrl string `json:"videoUrl"`
}

type PreviewImage struct {
	ImageUrl string `json:"imageUrl"`
}

type RatingUser struct {
	FirstName string `json:"firstName"`
}

type RatingNode struct {
	Id        int          `json:"id"`
	User      RatingUser   `json:"user"`
	Score     int          `json:"score"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"createdAt"`
	Replies   []RatingNode `json:"replies"`
}

// MovieDetail is the full detail-view shape. Year carries full date
// precision here, unlike the year-only list view.
type MovieDetail struct {
	Id            int             `json:"id"`
	PosterUrl     string          `json:"posterUrl"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Year          string          `json:"year"`
	Countries     []NamedEntity   `json:"countries"`
	Directors     []PersonSummary `json:"directors"`
	Actors        []PersonSummary `json:"actors"`
	Genres        []NamedEntity   `json:"genres"`
	Quality       string          `json:"quality"`
	Duration      int             `json:"duration"`
	TrailerUrl    string          `json:"trailerUrl"`
	Status        string          `json:"status"`
	Tracks        []LanguageTrack `json:"tracks"`
	PreviewImages []PreviewImage  `json:"previewImages"`
	AvgRating     float64         `json:"avgRating"`
	RatingCount   int             `json:"ratingCount"`
	Ratings       []RatingNode    `json:"ratings"`
}

// --- ratings ---

type CreateRatingRequest struct {
	Score    int    `json:"score" validate:"required,min=1,max=10"`
	Text     string `json:"text" validate:"required,max=5000"`
	ParentId *int   `json:"parentId" validate:"omitempty,min=1"`
}

type RatingResponse struct {
	Id        int    `json:"id"`
	Score     int    `json:"score"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// --- favorites / history ---

type FavoriteListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type HistoryEntry struct {
	Movie    MovieSummary `json:"movie"`
	ViewedAt time.Time    `json:"viewedAt"`
}

type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}
