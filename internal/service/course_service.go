package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beaconhq/beacon-backend/internal/assessment"
	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/search"
	"github.com/beaconhq/beacon-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// courseTreeTTL bounds staleness if an invalidation is ever missed.
const courseTreeTTL = time.Hour

// CourseService handles course business logic, the expanded content
// tree, its Redis cache, and the search index lifecycle.
type CourseService struct {
	courseRepo   *repository.CourseRepository
	moduleRepo   *repository.ModuleRepository
	lessonRepo   *repository.LessonRepository
	quizRepo     *repository.QuizRepository
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	index        *search.CourseIndex
	media        *storage.MediaStore
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	quizRepo *repository.QuizRepository,
	examRepo *repository.ExamRepository,
	questionRepo *repository.QuestionRepository,
	index *search.CourseIndex,
	media *storage.MediaStore,
	rdb *redis.Client,
	log zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		moduleRepo:   moduleRepo,
		lessonRepo:   lessonRepo,
		quizRepo:     quizRepo,
		examRepo:     examRepo,
		questionRepo: questionRepo,
		index:        index,
		media:        media,
		rdb:          rdb,
		log:          log.With().Str("component", "course_service").Logger(),
	}
}

// GetByID retrieves a course by its UUID.
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves courses with pagination.
func (s *CourseService) List(ctx context.Context, page, perPage int) ([]model.Course, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	courses, total, err := s.courseRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return courses, pagination, nil
}

// Create inserts a new course as a draft.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Duration:     req.Duration,
		ThumbnailKey: req.ThumbnailKey,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.log.Info().Str("course_id", course.ID.String()).Msg("Course created")
	return course, nil
}

// Update applies a partial update to a course and refreshes its search
// document if it is published.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.InstructorID != 0 {
		course.InstructorID = req.InstructorID
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.ThumbnailKey != nil {
		course.ThumbnailKey = req.ThumbnailKey
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidateTree(ctx, id)
	if course.IsPublished {
		if err := s.index.Index(ctx, course); err != nil {
			s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Search reindex failed")
		}
	}
	return course, nil
}

// SetPublished flips the publish flag in either direction. Publishing
// warms the tree cache and indexes the course for search; unpublishing
// removes both.
func (s *CourseService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.SetPublished(ctx, id, published); err != nil {
		return nil, err
	}
	course.IsPublished = published

	if published {
		if err := s.WarmTreeCache(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Tree cache warm failed")
		}
		if err := s.index.Index(ctx, course); err != nil {
			s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Search index failed")
		}
	} else {
		s.invalidateTree(ctx, id)
		if err := s.index.Delete(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Search deindex failed")
		}
	}

	s.log.Info().Str("course_id", id.String()).Bool("published", published).Msg("Course publish flag changed")
	return course, nil
}

// Search returns published courses matching the query, best first.
func (s *CourseService) Search(ctx context.Context, query string, size int) ([]model.Course, error) {
	ids, err := s.index.Search(ctx, query, size)
	if err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.GetByID(ctx, id)
		if err != nil {
			// Index can lag deletes; skip stale hits.
			continue
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// Tree returns the fully expanded course hierarchy. Published course
// trees are served from Redis when possible.
func (s *CourseService) Tree(ctx context.Context, id uuid.UUID) (*model.CourseTree, error) {
	key := config.CacheKey.CourseTreeKey(id.String())

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		tree := &model.CourseTree{}
		if err := json.Unmarshal([]byte(cached), tree); err == nil {
			return tree, nil
		}
		// Corrupt entry; rebuild below.
		s.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Tree cache read failed")
	}

	tree, err := s.buildTree(ctx, id)
	if err != nil {
		return nil, err
	}

	if tree.Course.IsPublished {
		if payload, err := json.Marshal(tree); err == nil {
			if err := s.rdb.Set(ctx, key, payload, courseTreeTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("Tree cache write failed")
			}
		}
	}
	return tree, nil
}

// WarmTreeCache rebuilds and stores the tree payload for a course.
func (s *CourseService) WarmTreeCache(ctx context.Context, id uuid.UUID) error {
	tree, err := s.buildTree(ctx, id)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	payload, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	key := config.CacheKey.CourseTreeKey(id.String())
	if err := s.rdb.Set(ctx, key, payload, courseTreeTTL).Err(); err != nil {
		return fmt.Errorf("store tree: %w", err)
	}
	return nil
}

// WarmPublishedCaches preloads tree cache and search index for every
// published course. Called once on startup.
func (s *CourseService) WarmPublishedCaches(ctx context.Context) error {
	courses, err := s.courseRepo.ListPublished(ctx)
	if err != nil {
		return fmt.Errorf("list published: %w", err)
	}

	for i := range courses {
		if err := s.WarmTreeCache(ctx, courses[i].ID); err != nil {
			s.log.Warn().Err(err).Str("course_id", courses[i].ID.String()).Msg("Tree warm failed")
		}
		if err := s.index.Index(ctx, &courses[i]); err != nil {
			s.log.Warn().Err(err).Str("course_id", courses[i].ID.String()).Msg("Index warm failed")
		}
	}

	s.log.Info().Int("count", len(courses)).Msg("Published course caches warmed")
	return nil
}

// Delete removes a course and everything beneath it: modules, lessons,
// quizzes, exams, questions, stored media, the cached tree, and the
// search document. The database cascades the row deletes; the cascade
// closure is computed up front so media cleanup sees every dependent.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) ([]content.Ref, error) {
	tree, err := s.buildTree(ctx, id)
	if err != nil {
		return nil, err
	}

	refs := content.CascadeDelete(contentTreeOf(tree), content.Ref{Kind: content.KindCourse, ID: id})

	// Media cleanup is best-effort; orphaned objects are harmless.
	if tree.Course.ThumbnailKey != nil {
		if err := s.media.Delete(ctx, *tree.Course.ThumbnailKey); err != nil {
			s.log.Warn().Err(err).Msg("Thumbnail delete failed")
		}
	}
	for _, mt := range tree.Modules {
		for _, lesson := range mt.Lessons {
			s.deleteLessonMedia(ctx, &lesson)
		}
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidateTree(ctx, id)
	if err := s.index.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Search deindex failed")
	}

	s.log.Info().
		Str("course_id", id.String()).
		Int("cascade_size", len(refs)).
		Msg("Course deleted")
	return refs, nil
}

// InvalidateTree drops a course's cached tree. Callers mutate first,
// invalidate second.
func (s *CourseService) InvalidateTree(ctx context.Context, id uuid.UUID) {
	s.invalidateTree(ctx, id)
}

func (s *CourseService) invalidateTree(ctx context.Context, id uuid.UUID) {
	key := config.CacheKey.CourseTreeKey(id.String())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("course_id", id.String()).Msg("Tree cache invalidation failed")
	}
}

func (s *CourseService) deleteLessonMedia(ctx context.Context, lesson *model.Lesson) {
	if lesson.VideoKey == nil {
		return
	}
	if err := s.media.Delete(ctx, *lesson.VideoKey); err != nil {
		s.log.Warn().Err(err).Str("lesson_id", lesson.ID.String()).Msg("Lesson video delete failed")
	}
}

func (s *CourseService) buildTree(ctx context.Context, id uuid.UUID) (*model.CourseTree, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	modules, err := s.moduleRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	tree := &model.CourseTree{Course: *course, Modules: []model.ModuleTree{}}
	for _, m := range modules {
		lessons, err := s.lessonRepo.ListByModule(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list lessons: %w", err)
		}
		if lessons == nil {
			lessons = []model.Lesson{}
		}

		mt := model.ModuleTree{Module: m, Lessons: lessons}
		if m.QuizID != nil {
			quiz, err := s.quizRepo.GetByID(ctx, *m.QuizID)
			if err != nil {
				return nil, fmt.Errorf("get quiz: %w", err)
			}
			questions, err := s.questionRepo.ListByQuiz(ctx, quiz.ID)
			if err != nil {
				return nil, fmt.Errorf("list quiz questions: %w", err)
			}
			if questions == nil {
				questions = []model.Question{}
			}
			mt.Quiz = &model.QuizWithQuestions{Quiz: *quiz, Questions: questions}
		}
		tree.Modules = append(tree.Modules, mt)
	}

	// Legacy flat lessons ride along at the course level.
	flat, err := s.lessonRepo.ListFlatByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list flat lessons: %w", err)
	}
	if len(flat) > 0 {
		tree.Modules = append(tree.Modules, model.ModuleTree{Lessons: flat})
	}

	exams, err := s.examRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	tree.Exams = []model.ExamDetail{}
	for _, e := range exams {
		questions, err := s.questionRepo.ListByExam(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("list exam questions: %w", err)
		}
		if questions == nil {
			questions = []model.Question{}
		}
		tree.Exams = append(tree.Exams, model.ExamDetail{
			Exam:           e,
			Questions:      questions,
			TotalPoints:    assessment.TotalPoints(questions),
			TotalQuestions: assessment.TotalQuestions(questions),
		})
	}

	return tree, nil
}

// contentTreeOf projects the API tree into the pure ownership tree the
// cascade engine consumes.
func contentTreeOf(tree *model.CourseTree) content.Tree {
	out := content.Tree{CourseID: tree.Course.ID}
	for _, mt := range tree.Modules {
		if mt.Module.ID == uuid.Nil {
			// Legacy flat lessons grouped under no module.
			for _, l := range mt.Lessons {
				out.Lessons = append(out.Lessons, l.ID)
			}
			continue
		}
		node := content.ModuleNode{ID: mt.Module.ID}
		for _, l := range mt.Lessons {
			node.Lessons = append(node.Lessons, l.ID)
		}
		if mt.Quiz != nil {
			qn := &content.QuizNode{ID: mt.Quiz.Quiz.ID}
			for _, q := range mt.Quiz.Questions {
				qn.Questions = append(qn.Questions, q.ID)
			}
			node.Quiz = qn
		}
		out.Modules = append(out.Modules, node)
	}
	for _, ed := range tree.Exams {
		en := content.ExamNode{ID: ed.Exam.ID}
		for _, q := range ed.Questions {
			en.Questions = append(en.Questions, q.ID)
		}
		out.Exams = append(out.Exams, en)
	}
	return out
}
