package domain

import "context"

// CatalogService defines the business logic for the class catalog:
// classes, locations, and teachers.
type CatalogService interface {
	ListClasses(ctx context.Context) ([]*Class, error)
	CreateClass(ctx context.Context, class *Class) error
	UpdateClass(ctx context.Context, class *Class) (*Class, error)
	DeleteClass(ctx context.Context, id int64) error

	ListLocations(ctx context.Context) ([]*Location, error)
	CreateLocation(ctx context.Context, location *Location) error
	UpdateLocation(ctx context.Context, location *Location) (*Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListTeachers(ctx context.Context) ([]*Teacher, error)
	CreateTeacher(ctx context.Context, teacher *Teacher) error
	UpdateTeacher(ctx context.Context, teacher *Teacher) (*Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// ContentService defines the business logic for editable site content:
// page copy, testimonials, and gallery photos.
type ContentService interface {
	ListPageContent(ctx context.Context) ([]*PageContent, error)
	GetPageContentBySlug(ctx context.Context, slug string) (*PageContent, error)
	CreatePageContent(ctx context.Context, pc *PageContent) error
	UpdatePageContent(ctx context.Context, pc *PageContent) (*PageContent, error)
	DeletePageContent(ctx context.Context, id int64) error

	ListTestimonials(ctx context.Context, category string) ([]*Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	UpdateTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error

	ListPhotos(ctx context.Context, activeOnly bool) ([]*Photo, error)
	CreatePhoto(ctx context.Context, photo *Photo) error
	UpdatePhoto(ctx context.Context, photo *Photo) (*Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
}

// InquiryService defines the business logic for inbound public submissions.
type InquiryService interface {
	CreateRegistration(ctx context.Context, reg *Registration) error
	SubmitContactForm(ctx context.Context, sub *ContactSubmission) error
	Subscribe(ctx context.Context, email string) (*NewsletterSubscriber, error)
	ListRegistrations(ctx context.Context) ([]*Registration, error)
	ListContactSubmissions(ctx context.Context) ([]*ContactSubmission, error)
	ListSubscribers(ctx context.Context) ([]*NewsletterSubscriber, error)
}
