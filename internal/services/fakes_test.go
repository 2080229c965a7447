package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/repositories"
)

type fakeApplicationRepo struct {
	apps      map[uuid.UUID]*models.Application
	updated   map[uuid.UUID]models.EvaluationResult
	appliedTo map[uuid.UUID]string
	createErr error
	updateErr error
}

func newFakeApplicationRepo(apps ...*models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{
		apps:      map[uuid.UUID]*models.Application{},
		updated:   map[uuid.UUID]models.EvaluationResult{},
		appliedTo: map[uuid.UUID]string{},
	}
	for _, app := range apps {
		repo.apps[app.ID] = app
	}
	return repo
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, repositories.ErrRecordNotFound)
	}
	return app, nil
}

func (r *fakeApplicationRepo) UpdateEvaluation(_ context.Context, id uuid.UUID, result models.EvaluationResult, appliedFor string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.apps[id]; !ok {
		return fmt.Errorf("application %s: %w", id, repositories.ErrRecordNotFound)
	}
	r.updated[id] = result
	r.appliedTo[id] = appliedFor
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func (r *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, repositories.ErrRecordNotFound)
	}
	return job, nil
}

type fakeStudentRepo struct {
	students  map[uuid.UUID]*models.Student
	createErr error
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[uuid.UUID]*models.Student{}}
	for _, s := range students {
		repo.students[s.ID] = s
	}
	return repo
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if r.createErr != nil {
		return r.createErr
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, repositories.ErrRecordNotFound)
	}
	return student, nil
}

func (r *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, fmt.Errorf("student %s: %w", email, repositories.ErrRecordNotFound)
}

type fakeBlobStore struct {
	blobs     map[string][]byte
	saveErr   error
	downloads int
	deleted   []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (b *fakeBlobStore) Save(path string, data []byte) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.blobs[path] = data
	return nil
}

func (b *fakeBlobStore) Download(_ context.Context, path string) ([]byte, error) {
	b.downloads++
	data, ok := b.blobs[path]
	if !ok {
		return nil, fmt.Errorf("failed to download %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

func (b *fakeBlobStore) Delete(path string) error {
	b.deleted = append(b.deleted, path)
	delete(b.blobs, path)
	return nil
}

func (b *fakeBlobStore) EnsureUploadDir() error {
	return nil
}

// fakeExtractor treats every file as plain text.
type fakeExtractor struct {
	err   error
	calls int
}

func (x *fakeExtractor) ExtractText(data []byte, filename string) (string, error) {
	x.calls++
	if x.err != nil {
		return "", x.err
	}
	if len(data) == 0 {
		return "", &ExtractionError{Filename: filename, Cause: errors.New("empty file")}
	}
	return string(data), nil
}
