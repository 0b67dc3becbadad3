package services

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"admin-panel-server/models"
	"admin-panel-server/repositories"
)

const (
	dashboardTopCount    = 5
	dashboardMonthCap    = 12
	analyticsTopCount    = 10
	analyticsAuthorCount = 10
)

// AnalyticsService computes derived statistics over the article, user and
// comment collections. Nothing here is persisted; every report is built from
// independent reads that run concurrently and are combined once all finish.
type AnalyticsService interface {
	Dashboard() (*models.DashboardReport, error)
	ArticleAnalytics(window repositories.TimeWindow) (*models.ArticleAnalyticsReport, error)
}

type analyticsService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	commentRepo repositories.CommentRepository
}

func NewAnalyticsService(
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) AnalyticsService {
	return &analyticsService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

func (s *analyticsService) Dashboard() (*models.DashboardReport, error) {
	var (
		overview   models.DashboardOverview
		byStatus   []models.StatusCount
		byMonth    []models.MonthStat
		topRaw     []models.Article
		recentRaw  []models.Article
		allWindow  repositories.TimeWindow
	)

	var g errgroup.Group

	g.Go(func() (err error) {
		overview.TotalArticles, err = s.articleRepo.Count(allWindow)
		return err
	})
	g.Go(func() (err error) {
		overview.PublishedArticles, err = s.articleRepo.CountWithStatus(models.StatusPublished)
		return err
	})
	g.Go(func() (err error) {
		overview.DraftArticles, err = s.articleRepo.CountWithStatus(models.StatusDraft)
		return err
	})
	g.Go(func() (err error) {
		overview.ArchivedArticles, err = s.articleRepo.CountWithStatus(models.StatusArchived)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalUsers, err = s.userRepo.CountAll()
		return err
	})
	g.Go(func() (err error) {
		overview.ActiveUsers, err = s.userRepo.CountActive()
		return err
	})
	g.Go(func() (err error) {
		overview.TotalComments, err = s.commentRepo.CountActive()
		return err
	})
	g.Go(func() (err error) {
		overview.TotalViews, err = s.articleRepo.SumViews(allWindow)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalLikes, err = s.articleRepo.TotalLikes()
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.articleRepo.CountByStatus(allWindow)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = s.articleRepo.CountByMonth(allWindow)
		return err
	})
	g.Go(func() (err error) {
		topRaw, err = s.articleRepo.TopByViews(allWindow, dashboardTopCount)
		return err
	})
	g.Go(func() (err error) {
		recentRaw, err = s.articleRepo.Recent(dashboardTopCount)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	topArticles, err := s.withLikeCounts(topRaw)
	if err != nil {
		return nil, err
	}

	recentArticles := make([]models.RecentArticle, 0, len(recentRaw))
	for i := range recentRaw {
		recentArticles = append(recentArticles, models.RecentArticle{
			ID:        recentRaw[i].ID,
			Title:     recentRaw[i].Title,
			Status:    recentRaw[i].Status,
			Author:    recentRaw[i].Author.Username,
			CreatedAt: recentRaw[i].CreatedAt,
		})
	}

	// Buckets arrive ascending; keep only the most recent 12.
	if len(byMonth) > dashboardMonthCap {
		byMonth = byMonth[len(byMonth)-dashboardMonthCap:]
	}
	monthCounts := make([]models.MonthCount, 0, len(byMonth))
	for _, m := range byMonth {
		monthCounts = append(monthCounts, models.MonthCount{Month: m.Month, Count: m.Count})
	}

	if byStatus == nil {
		byStatus = []models.StatusCount{}
	}

	return &models.DashboardReport{
		Overview: overview,
		Charts: models.DashboardCharts{
			ArticlesByStatus: byStatus,
			ArticlesByMonth:  monthCounts,
		},
		TopArticles:    topArticles,
		RecentArticles: recentArticles,
	}, nil
}

func (s *analyticsService) ArticleAnalytics(window repositories.TimeWindow) (*models.ArticleAnalyticsReport, error) {
	var (
		byStatus  []models.StatusCount
		byMonth   []models.MonthStat
		topRaw    []models.Article
		likeStats []models.TopArticle
		byAuthor  []models.AuthorStat
	)

	var g errgroup.Group

	g.Go(func() (err error) {
		byStatus, err = s.articleRepo.CountByStatus(window)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = s.articleRepo.CountByMonth(window)
		return err
	})
	g.Go(func() (err error) {
		topRaw, err = s.articleRepo.TopByViews(window, analyticsTopCount)
		return err
	})
	g.Go(func() (err error) {
		likeStats, err = s.articleRepo.ListLikeStats(window)
		return err
	})
	g.Go(func() (err error) {
		byAuthor, err = s.articleRepo.CountByAuthor(window, analyticsAuthorCount)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	topViewed, err := s.withLikeCounts(topRaw)
	if err != nil {
		return nil, err
	}

	// The store cannot order by a counted quantity, so the like ranking is
	// sorted here after fetching.
	sort.SliceStable(likeStats, func(i, j int) bool {
		return likeStats[i].Likes > likeStats[j].Likes
	})
	if len(likeStats) > analyticsTopCount {
		likeStats = likeStats[:analyticsTopCount]
	}
	if likeStats == nil {
		likeStats = []models.TopArticle{}
	}

	if byStatus == nil {
		byStatus = []models.StatusCount{}
	}
	if byMonth == nil {
		byMonth = []models.MonthStat{}
	}
	if byAuthor == nil {
		byAuthor = []models.AuthorStat{}
	}

	return &models.ArticleAnalyticsReport{
		ArticlesByStatus:  byStatus,
		ArticlesByMonth:   byMonth,
		TopViewedArticles: topViewed,
		TopLikedArticles:  likeStats,
		ArticlesByAuthor:  byAuthor,
	}, nil
}

func (s *analyticsService) withLikeCounts(articles []models.Article) ([]models.TopArticle, error) {
	result := make([]models.TopArticle, 0, len(articles))
	for i := range articles {
		likes, err := s.articleRepo.CountLikes(articles[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.TopArticle{
			ID:        articles[i].ID,
			Title:     articles[i].Title,
			Views:     articles[i].Views,
			Likes:     likes,
			Author:    articles[i].Author.Username,
			Status:    articles[i].Status,
			CreatedAt: articles[i].CreatedAt,
		})
	}
	return result, nil
}
