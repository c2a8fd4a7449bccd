package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseTreeKey returns the cache key for a published course's
// expanded content tree.
func (r *CacheKeyStruct) CourseTreeKey(courseID string) string {
	return fmt.Sprintf("course:%s:tree", courseID)
}

// ExamDetailKey returns the cache key for an exam's detail payload.
func (r *CacheKeyStruct) ExamDetailKey(examID string) string {
	return fmt.Sprintf("exam:%s:detail", examID)
}

var CacheKey = NewCacheKeyStruct()
