package app

import (
	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/rating"
)

// Date layouts of the presentation surface. The list view flattens a
// release date to its year; the detail view keeps full precision.
const (
	yearLayout            = "2006"
	releaseDateLayout     = "02-01-2006"
	ratingTimestampLayout = "02-01-2006 15:04:05"
)

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Phone:     user.Phone,
		AvatarUrl: user.AvatarUrl,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

func toNamedEntities[T any](items []T, id func(T) int, name func(T) domain.LocalizedText, locale string) []api.NamedEntity {
	entities := make([]api.NamedEntity, len(items))

	for i, item := range items {
		entities[i] = api.NamedEntity{
			Id:   id(item),
			Name: name(item).Resolve(locale),
		}
	}

	return entities
}

func toCountryRefs(countries []domain.Country, locale string) []api.NamedEntity {
	return toNamedEntities(countries,
		func(c domain.Country) int { return c.ID },
		func(c domain.Country) domain.LocalizedText { return c.Name },
		locale)
}

func toGenreRefs(genres []domain.Genre, locale string) []api.NamedEntity {
	return toNamedEntities(genres,
		func(g domain.Genre) int { return g.ID },
		func(g domain.Genre) domain.LocalizedText { return g.Name },
		locale)
}

func toPersonSummaries(people []domain.Person, locale string) []api.PersonSummary {
	summaries := make([]api.PersonSummary, len(people))

	for i, person := range people {
		summaries[i] = api.PersonSummary{
			Id:   person.ID,
			Name: person.Name.Resolve(locale),
		}
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie, locale string) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:        movie.ID,
		PosterUrl: movie.PosterUrl,
		Name:      movie.Name.Resolve(locale),
		Year:      movie.ReleaseDate.Format(yearLayout),
		Countries: toCountryRefs(movie.Countries, locale),
		Genres:    toGenreRefs(movie.Genres, locale),
		Status:    string(movie.Status),
	}
}

func toMovieSummaries(movies []*domain.Movie, locale string) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie, locale)
	}

	return summaries
}

func toMovieDetail(movie *domain.Movie, ratings []*domain.Rating, locale string) api.MovieDetail {
	summary := rating.Aggregate(ratings)

	tracks := make([]api.LanguageTrack, len(movie.Tracks))
	for i, track := range movie.Tracks {
		tracks[i] = api.LanguageTrack{
			Language: track.Language.Resolve(locale),
			VideoUrl: track.VideoUrl,
		}
	}

	previews := make([]api.PreviewImage, len(movie.Previews))
	for i, preview := range movie.Previews {
		previews[i] = api.PreviewImage{ImageUrl: preview.ImageUrl}
	}

	return api.MovieDetail{
		Id:            movie.ID,
		PosterUrl:     movie.PosterUrl,
		Name:          movie.Name.Resolve(locale),
		Description:   movie.Description.Resolve(locale),
		Year:          movie.ReleaseDate.Format(releaseDateLayout),
		Countries:     toCountryRefs(movie.Countries, locale),
		Directors:     toPersonSummaries(movie.Directors, locale),
		Actors:        toPersonSummaries(movie.Actors, locale),
		Genres:        toGenreRefs(movie.Genres, locale),
		Quality:       string(movie.Quality),
		Duration:      movie.Duration,
		TrailerUrl:    movie.TrailerUrl,
		Status:        string(movie.Status),
		Tracks:        tracks,
		PreviewImages: previews,
		AvgRating:     summary.Average,
		RatingCount:   summary.Count,
		Ratings:       toRatingNodes(rating.Thread(ratings)),
	}
}

// toRatingNodes renders a rating thread, exposing only the rater's first
// name from their profile.
func toRatingNodes(nodes []*rating.Node) []api.RatingNode {
	out := make([]api.RatingNode, len(nodes))

	for i, node := range nodes {
		out[i] = api.RatingNode{
			Id:        node.ID,
			User:      api.RatingUser{FirstName: node.UserFirstName},
			Score:     node.Score,
			Text:      node.Text,
			CreatedAt: node.CreatedAt.Format(ratingTimestampLayout),
			Replies:   toRatingNodes(node.Replies),
		}
	}

	return out
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
