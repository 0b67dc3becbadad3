package models

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

type CreateEditorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" binding:"required"`
}

type UpdateArticleRequest struct {
	Title   *string        `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string        `json:"content"`
	Tags    *TagList       `json:"tags"`
	Status  *ArticleStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
}

type UserListParams struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Role     string `form:"role"`
	IsActive *bool  `form:"isActive"`
	Search   string `form:"search"`
}

type ArticleListParams struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Status   string `form:"status"`
	AuthorID uint   `form:"authorId"`
	Search   string `form:"search"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ArticleView is the API shape of an article, carrying the derived fields
// (comment count, like count, image URL) computed at query time.
type ArticleView struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Tags         TagList       `json:"tags"`
	Status       ArticleStatus `json:"status"`
	Views        int64         `json:"views"`
	LikesCount   int64         `json:"likesCount"`
	CommentCount int64         `json:"commentCount"`
	Author       *User         `json:"author"`
	Image        ArticleImage  `json:"image"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type MonthStat struct {
	Month      string `json:"month"`
	Count      int64  `json:"count"`
	TotalViews int64  `json:"totalViews"`
}

type TopArticle struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Views     int64         `json:"views"`
	Likes     int64         `json:"likes"`
	Author    string        `json:"author"`
	Status    ArticleStatus `json:"status,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type RecentArticle struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Status    ArticleStatus `json:"status"`
	Author    string        `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

type AuthorStat struct {
	AuthorID     uint   `json:"authorId"`
	AuthorName   string `json:"authorName"`
	AuthorEmail  string `json:"authorEmail"`
	ArticleCount int64  `json:"articleCount"`
	TotalViews   int64  `json:"totalViews"`
}

type DashboardOverview struct {
	TotalArticles     int64 `json:"totalArticles"`
	PublishedArticles int64 `json:"publishedArticles"`
	DraftArticles     int64 `json:"draftArticles"`
	ArchivedArticles  int64 `json:"archivedArticles"`
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	TotalComments     int64 `json:"totalComments"`
	TotalViews        int64 `json:"totalViews"`
	TotalLikes        int64 `json:"totalLikes"`
}

type DashboardCharts struct {
	ArticlesByStatus []StatusCount `json:"articlesByStatus"`
	ArticlesByMonth  []MonthCount  `json:"articlesByMonth"`
}

type DashboardReport struct {
	Overview       DashboardOverview `json:"overview"`
	Charts         DashboardCharts   `json:"charts"`
	TopArticles    []TopArticle      `json:"topArticles"`
	RecentArticles []RecentArticle   `json:"recentArticles"`
}

type ArticleAnalyticsReport struct {
	ArticlesByStatus  []StatusCount `json:"articlesByStatus"`
	ArticlesByMonth   []MonthStat   `json:"articlesByMonth"`
	TopViewedArticles []TopArticle  `json:"topViewedArticles"`
	TopLikedArticles  []TopArticle  `json:"topLikedArticles"`
	ArticlesByAuthor  []AuthorStat  `json:"articlesByAuthor"`
}
