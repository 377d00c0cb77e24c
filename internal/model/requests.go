package model

import "github.com/deppfellow/courses/internal/validation"

// The course requests only describe what gets bound from the path and the
// body. Name rules are enforced by the course service, which must report a
// missing course before it looks at the new name.
//
// "name" is the only body key either write request accepts.

type ListCoursesRequest struct{}

func (r *ListCoursesRequest) Validate() error { return nil }

type GetCourseRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *GetCourseRequest) Validate() error { return nil }

func (r *GetCourseRequest) CourseID() int { return ParseCourseID(r.ID) }

type CreateCourseRequest struct {
	Name string `json:"name"`
}

func (r *CreateCourseRequest) Validate() error { return nil }

func (r *CreateCourseRequest) StrictBody() {}

// UpdateCourseRequest decodes its body itself so that a bad body does not
// fail the bind. The decode error is kept for the course service, which
// reports it only once the course is known to exist.
type UpdateCourseRequest struct {
	ID   string `param:"id" json:"-"`
	Name string `json:"name"`

	bodyErr error
}

func (r *UpdateCourseRequest) Validate() error { return nil }

func (r *UpdateCourseRequest) CourseID() int { return ParseCourseID(r.ID) }

// UnmarshalJSON accepts a body holding nothing but "name".
func (r *UpdateCourseRequest) UnmarshalJSON(data []byte) error {
	var body CourseInput
	if err := validation.DecodeStrict(data, &body); err != nil {
		r.bodyErr = err
		return nil
	}

	r.Name = body.Name
	return nil
}

// BodyErr returns the error from decoding the body, if any.
func (r *UpdateCourseRequest) BodyErr() error { return r.bodyErr }

type DeleteCourseRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *DeleteCourseRequest) Validate() error { return nil }

func (r *DeleteCourseRequest) CourseID() int { return ParseCourseID(r.ID) }
