package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() Tree {
	return Tree{
		CourseID: uuid.New(),
		Modules: []ModuleNode{
			{
				ID:      uuid.New(),
				Lessons: []uuid.UUID{uuid.New(), uuid.New()},
				Quiz: &QuizNode{
					ID:        uuid.New(),
					Questions: []uuid.UUID{uuid.New()},
				},
			},
			{
				ID:      uuid.New(),
				Lessons: []uuid.UUID{uuid.New()},
			},
		},
		Lessons: []uuid.UUID{uuid.New()}, // legacy flat lesson
		Exams: []ExamNode{
			{
				ID:        uuid.New(),
				Questions: []uuid.UUID{uuid.New(), uuid.New()},
			},
		},
	}
}

func refSet(refs []Ref) map[Ref]bool {
	set := make(map[Ref]bool, len(refs))
	for _, r := range refs {
		set[r] = true
	}
	return set
}

func TestCascadeDeleteCourse(t *testing.T) {
	tree := buildTree()
	got := refSet(CascadeDelete(tree, Ref{KindCourse, tree.CourseID}))

	// Every transitively owned entity is present.
	want := 0
	for _, m := range tree.Modules {
		assert.True(t, got[Ref{KindModule, m.ID}])
		want++
		for _, l := range m.Lessons {
			assert.True(t, got[Ref{KindLesson, l}])
			want++
		}
		if m.Quiz != nil {
			assert.True(t, got[Ref{KindQuiz, m.Quiz.ID}])
			want++
			for _, q := range m.Quiz.Questions {
				assert.True(t, got[Ref{KindQuestion, q}])
				want++
			}
		}
	}
	for _, l := range tree.Lessons {
		assert.True(t, got[Ref{KindLesson, l}])
		want++
	}
	for _, e := range tree.Exams {
		assert.True(t, got[Ref{KindExam, e.ID}])
		want++
		for _, q := range e.Questions {
			assert.True(t, got[Ref{KindQuestion, q}])
			want++
		}
	}

	// ...and nothing else.
	assert.Len(t, got, want)
}

func TestCascadeDeleteModule(t *testing.T) {
	tree := buildTree()
	mod := tree.Modules[0]

	got := refSet(CascadeDelete(tree, Ref{KindModule, mod.ID}))

	for _, l := range mod.Lessons {
		assert.True(t, got[Ref{KindLesson, l}])
	}
	require.NotNil(t, mod.Quiz)
	assert.True(t, got[Ref{KindQuiz, mod.Quiz.ID}])
	for _, q := range mod.Quiz.Questions {
		assert.True(t, got[Ref{KindQuestion, q}])
	}
	assert.Len(t, got, len(mod.Lessons)+1+len(mod.Quiz.Questions))

	// A sibling module's content is untouched.
	other := tree.Modules[1]
	assert.False(t, got[Ref{KindLesson, other.Lessons[0]}])
}

func TestCascadeDeleteExam(t *testing.T) {
	tree := buildTree()
	exam := tree.Exams[0]

	got := refSet(CascadeDelete(tree, Ref{KindExam, exam.ID}))
	assert.Len(t, got, len(exam.Questions))
	for _, q := range exam.Questions {
		assert.True(t, got[Ref{KindQuestion, q}])
	}
}

func TestCascadeDeleteLeaves(t *testing.T) {
	tree := buildTree()
	assert.Empty(t, CascadeDelete(tree, Ref{KindLesson, tree.Modules[0].Lessons[0]}))
	assert.Empty(t, CascadeDelete(tree, Ref{KindQuestion, tree.Exams[0].Questions[0]}))
}

func TestCascadeDeleteUnknownCourse(t *testing.T) {
	tree := buildTree()
	assert.Empty(t, CascadeDelete(tree, Ref{KindCourse, uuid.New()}))
}

func TestAttachQuiz(t *testing.T) {
	quizID := uuid.New()

	attached, err := AttachQuiz(nil, quizID)
	require.NoError(t, err)
	require.NotNil(t, attached)
	assert.Equal(t, quizID, *attached)

	// Second attach is rejected.
	_, err = AttachQuiz(attached, uuid.New())
	assert.ErrorIs(t, err, ErrDuplicateQuiz)
}
