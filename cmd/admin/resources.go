package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/bootstrap"
)

var courseImageFlags = []string{"image", "option-image-1", "option-image-2", "option-image-3"}

func courseCommands() *cli.Command {
	list := entity[models.Course]{
		singular: "course",
		service:  func(core *bootstrap.Core) listingService[models.Course] { return core.Services.Courses },
		headers:  []string{"ID", "TITLE", "CATEGORY", "PRICE", "VISIBLE", "INSTRUCTOR"},
		row: func(c models.Course, _ *time.Location) []string {
			instructor := "-"
			if c.Instructor != nil {
				instructor = c.Instructor.Name
			} else if id := c.InstructorKey(); id != 0 {
				instructor = "#" + strconv.FormatInt(id, 10)
			}
			return []string{strconv.FormatInt(c.ID, 10), c.Title, c.Category, optionalMoney(c.Price), strconv.FormatBool(c.IsVisible), instructor}
		},
		filterKeys: []string{"category"},
	}

	flags := []cli.Flag{
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "short", Usage: "short description"},
		&cli.StringFlag{Name: "long", Usage: "long description"},
		&cli.Float64Flag{Name: "price"},
		&cli.Float64Flag{Name: "rating", Usage: "0 to 5"},
		&cli.StringFlag{Name: "category"},
		&cli.StringFlag{Name: "schedule"},
		&cli.StringFlag{Name: "duration", Usage: `e.g. "2 weeks"`},
		&cli.StringFlag{Name: "mode", Usage: "delivery mode"},
		&cli.BoolFlag{Name: "visible", Usage: "shown on the public site (--visible=false to hide)"},
		&cli.Int64Flag{Name: "instructor", Usage: "instructor `ID`, 0 for none"},
		&cli.Int64SliceFlag{Name: "accommodation", Usage: "linked accommodation `ID`, repeatable; replaces the current links"},
	}
	for i, name := range courseImageFlags {
		flags = append(flags,
			&cli.PathFlag{Name: name, Usage: "image file for slot " + strconv.Itoa(i)},
			&cli.BoolFlag{Name: "remove-" + name, Usage: "remove the stored image of slot " + strconv.Itoa(i)},
		)
	}

	editor := form[models.Course, forms.CourseDraft]{
		singular: "course",
		service: func(core *bootstrap.Core) editorService[models.Course, forms.CourseDraft] {
			return core.Services.Courses
		},
		flags: flags,
		apply: func(c *cli.Context, d *forms.CourseDraft) {
			setString(c, "title", &d.Title)
			setString(c, "short", &d.ShortDescription)
			setString(c, "long", &d.LongDescription)
			setFloat(c, "price", &d.Price)
			setFloat(c, "rating", &d.Rating)
			setString(c, "category", &d.Category)
			setString(c, "schedule", &d.Schedule)
			setString(c, "duration", &d.Duration)
			setString(c, "mode", &d.Mode)
			if c.IsSet("visible") {
				d.IsVisible = c.Bool("visible")
			}
			setOptionalID(c, "instructor", &d.InstructorID)
			if c.IsSet("accommodation") {
				d.AccommodationIDs = append([]int64{}, c.Int64Slice("accommodation")...)
			}
		},
		stage: stageCourse,
	}

	return &cli.Command{
		Name:  "courses",
		Usage: "manage courses",
		Subcommands: append(append(list.commands(), editor.commands()...),
			&cli.Command{
				Name:      "toggle",
				Usage:     "show or hide a course on the public site",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireLogin(c); err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					course, err := coreFrom(c).Services.Courses.ToggleVisibility(c.Context, id)
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, course)
				},
			}),
	}
}

// stageCourse sets the image slots and walks the form to its last step.
func stageCourse(c *cli.Context, core *bootstrap.Core) error {
	courses := core.Services.Courses
	for slot, name := range courseImageFlags {
		if c.Bool("remove-" + name) {
			if _, err := courses.DropImage(slot); err != nil {
				return err
			}
		}
		if path := c.Path(name); path != "" {
			up, err := core.Images.Open(path)
			if err != nil {
				return err
			}
			if _, err := courses.StageImage(slot, up); err != nil {
				return err
			}
		}
	}

	for {
		step, steps, _ := courses.Step()
		if step >= steps {
			return nil
		}
		if _, err := courses.NextStep(); err != nil {
			return err
		}
	}
}

// stageImage attaches the image at the path given in flag, if any.
func stageImage(flag string, attach func(core *bootstrap.Core, path string) error) func(c *cli.Context, core *bootstrap.Core) error {
	return func(c *cli.Context, core *bootstrap.Core) error {
		path := c.Path(flag)
		if path == "" {
			return nil
		}
		return attach(core, path)
	}
}

func instructorCommands() *cli.Command {
	list := entity[models.Instructor]{
		singular: "instructor",
		service:  func(core *bootstrap.Core) listingService[models.Instructor] { return core.Services.Instructors },
		headers:  []string{"ID", "NAME", "ROLE"},
		row: func(i models.Instructor, _ *time.Location) []string {
			return []string{strconv.FormatInt(i.ID, 10), i.Name, i.Role}
		},
	}
	editor := form[models.Instructor, forms.InstructorDraft]{
		singular: "instructor",
		service: func(core *bootstrap.Core) editorService[models.Instructor, forms.InstructorDraft] {
			return core.Services.Instructors
		},
		flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "role"},
			&cli.StringFlag{Name: "bio"},
			&cli.PathFlag{Name: "photo", Usage: "photo file"},
		},
		apply: func(c *cli.Context, d *forms.InstructorDraft) {
			setString(c, "name", &d.Name)
			setString(c, "role", &d.Role)
			setString(c, "bio", &d.Description)
		},
		stage: stageImage("photo", func(core *bootstrap.Core, path string) error {
			up, err := core.Images.Open(path)
			if err != nil {
				return err
			}
			_, err = core.Services.Instructors.AttachImage(up)
			return err
		}),
	}
	return &cli.Command{
		Name:        "instructors",
		Usage:       "manage instructors",
		Subcommands: append(list.commands(), editor.commands()...),
	}
}

func accommodationCommands() *cli.Command {
	list := entity[models.Accommodation]{
		singular: "accommodation",
		service:  func(core *bootstrap.Core) listingService[models.Accommodation] { return core.Services.Accommodations },
		headers:  []string{"ID", "TYPE", "PRICE/DAY"},
		row: func(a models.Accommodation, _ *time.Location) []string {
			return []string{strconv.FormatInt(a.ID, 10), a.Type, money(a.Price)}
		},
	}
	editor := form[models.Accommodation, forms.AccommodationDraft]{
		singular: "accommodation",
		service: func(core *bootstrap.Core) editorService[models.Accommodation, forms.AccommodationDraft] {
			return core.Services.Accommodations
		},
		flags: []cli.Flag{
			&cli.StringFlag{Name: "type"},
			&cli.Float64Flag{Name: "price", Usage: "price per day"},
			&cli.PathFlag{Name: "image", Usage: "image file"},
		},
		apply: func(c *cli.Context, d *forms.AccommodationDraft) {
			setString(c, "type", &d.Type)
			setFloat(c, "price", &d.Price)
		},
		stage: stageImage("image", func(core *bootstrap.Core, path string) error {
			up, err := core.Images.Open(path)
			if err != nil {
				return err
			}
			_, err = core.Services.Accommodations.AttachImage(up)
			return err
		}),
	}
	return &cli.Command{
		Name:        "accommodations",
		Usage:       "manage accommodations",
		Subcommands: append(list.commands(), editor.commands()...),
	}
}

func testimonialCommands() *cli.Command {
	list := entity[models.Testimonial]{
		singular: "testimonial",
		service:  func(core *bootstrap.Core) listingService[models.Testimonial] { return core.Services.Testimonials },
		headers:  []string{"ID", "NAME", "RATING", "FEEDBACK"},
		row: func(t models.Testimonial, _ *time.Location) []string {
			return []string{strconv.FormatInt(t.ID, 10), t.Name, strconv.Itoa(t.Rating), truncate(t.Feedback, 48)}
		},
	}
	editor := form[models.Testimonial, forms.TestimonialDraft]{
		singular: "testimonial",
		service: func(core *bootstrap.Core) editorService[models.Testimonial, forms.TestimonialDraft] {
			return core.Services.Testimonials
		},
		flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "feedback"},
			&cli.IntFlag{Name: "rating", Usage: "1 to 5"},
			&cli.PathFlag{Name: "photo", Usage: "photo file"},
		},
		apply: func(c *cli.Context, d *forms.TestimonialDraft) {
			setString(c, "name", &d.Name)
			setString(c, "feedback", &d.Feedback)
			if c.IsSet("rating") {
				d.Rating = c.Int("rating")
			}
		},
		stage: stageImage("photo", func(core *bootstrap.Core, path string) error {
			up, err := core.Images.Open(path)
			if err != nil {
				return err
			}
			_, err = core.Services.Testimonials.AttachImage(up)
			return err
		}),
	}
	return &cli.Command{
		Name:        "testimonials",
		Usage:       "manage testimonials",
		Subcommands: append(list.commands(), editor.commands()...),
	}
}

func galleryCommands() *cli.Command {
	list := entity[models.GalleryItem]{
		singular: "gallery item",
		service:  func(core *bootstrap.Core) listingService[models.GalleryItem] { return core.Services.Gallery },
		headers:  []string{"ID", "CATEGORY", "IMAGE"},
		row: func(g models.GalleryItem, _ *time.Location) []string {
			return []string{strconv.FormatInt(g.ID, 10), g.Category, g.ImageURL}
		},
		filterKeys: []string{"category"},
	}
	editor := form[models.GalleryItem, forms.GalleryDraft]{
		singular: "gallery item",
		service: func(core *bootstrap.Core) editorService[models.GalleryItem, forms.GalleryDraft] {
			return core.Services.Gallery
		},
		flags: []cli.Flag{
			&cli.StringFlag{Name: "category"},
			&cli.PathFlag{Name: "image", Usage: "image file"},
		},
		apply: func(c *cli.Context, d *forms.GalleryDraft) {
			setString(c, "category", &d.Category)
		},
		stage: stageImage("image", func(core *bootstrap.Core, path string) error {
			up, err := core.Images.Open(path)
			if err != nil {
				return err
			}
			_, err = core.Services.Gallery.AttachImage(up)
			return err
		}),
	}
	return &cli.Command{
		Name:        "gallery",
		Usage:       "manage the gallery",
		Subcommands: append(list.commands(), editor.commands()...),
	}
}

func enrollmentCommands() *cli.Command {
	list := entity[models.Enrollment]{
		singular: "enrollment",
		service:  func(core *bootstrap.Core) listingService[models.Enrollment] { return core.Services.Enrollments },
		headers:  []string{"ID", "NAME", "EMAIL", "COURSE", "STATUS", "TOTAL", "CREATED"},
		row: func(e models.Enrollment, loc *time.Location) []string {
			return []string{
				strconv.FormatInt(e.ID, 10), e.FullName, e.Email, e.CourseTitle,
				string(e.PaymentStatus), money(e.TotalPrice), day(e.CreatedAt.Time, loc),
			}
		},
		filterKeys: services.EnrollmentFilters,
		dated:      true,
	}

	draftFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "full name"},
		&cli.StringFlag{Name: "email"},
		&cli.StringFlag{Name: "phone"},
		&cli.StringFlag{Name: "gender"},
		&cli.StringFlag{Name: "country"},
		&cli.Int64Flag{Name: "course", Usage: "course `ID`"},
		&cli.Int64Flag{Name: "accommodation", Usage: "accommodation `ID`, 0 for none"},
		&cli.StringFlag{Name: "payment-mode", Usage: "PAY_NOW, PAY_LATER or ONLINE"},
	}
	apply := func(c *cli.Context, d *forms.EnrollmentDraft) {
		setString(c, "name", &d.FullName)
		setString(c, "email", &d.Email)
		setString(c, "phone", &d.Phone)
		setString(c, "gender", &d.Gender)
		setString(c, "country", &d.Country)
		if c.IsSet("course") {
			d.CourseID = c.Int64("course")
		}
		setOptionalID(c, "accommodation", &d.AccommodationID)
		if c.IsSet("payment-mode") {
			d.PaymentMode = models.PaymentMode(strings.ToUpper(c.String("payment-mode")))
		}
	}

	editor := form[models.Enrollment, forms.EnrollmentDraft]{
		singular: "enrollment",
		service: func(core *bootstrap.Core) editorService[models.Enrollment, forms.EnrollmentDraft] {
			return core.Services.Enrollments
		},
		flags: draftFlags,
		apply: apply,
	}

	extra := []*cli.Command{
		{
			Name:      "pay",
			Usage:     "set the payment status; PAID also switches the payment mode to ONLINE",
			ArgsUsage: "ID",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "status", Value: string(models.PaymentPaid), Usage: "PAID or PENDING"},
			},
			Action: func(c *cli.Context) error {
				if err := requireLogin(c); err != nil {
					return err
				}
				id, err := argID(c)
				if err != nil {
					return err
				}
				status := models.PaymentStatus(strings.ToUpper(c.String("status")))
				enrollment, err := coreFrom(c).Services.Enrollments.SetPayment(c.Context, id, status)
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, enrollment)
			},
		},
		{
			Name:  "quote",
			Usage: "price an enrollment from the current course and accommodation prices",
			Flags: []cli.Flag{
				&cli.Int64Flag{Name: "course", Usage: "course `ID`", Required: true},
				&cli.Int64Flag{Name: "accommodation", Usage: "accommodation `ID`"},
			},
			Action: func(c *cli.Context) error {
				if err := requireLogin(c); err != nil {
					return err
				}
				var d forms.EnrollmentDraft
				apply(c, &d)
				q, err := coreFrom(c).Services.Enrollments.Quote(c.Context, d)
				if err != nil {
					return err
				}
				return printTable(c.App.Writer, []string{"DAYS", "COURSE", "ACCOMMODATION", "TOTAL"}, [][]string{{
					strconv.Itoa(q.DurationDays), money(q.CoursePrice), money(q.AccommodationCost), money(q.TotalPrice),
				}})
			},
		},
	}

	return &cli.Command{
		Name:        "enrollments",
		Usage:       "manage enrollments",
		Subcommands: append(append(list.commands(), editor.commands()...), extra...),
	}
}

func enquiryCommands() *cli.Command {
	list := entity[models.Enquiry]{
		singular: "enquiry",
		service:  func(core *bootstrap.Core) listingService[models.Enquiry] { return core.Services.Enquiries },
		headers:  []string{"ID", "NAME", "EMAIL", "STATUS", "CREATED", "MESSAGE"},
		row: func(e models.Enquiry, loc *time.Location) []string {
			return []string{
				strconv.FormatInt(e.ID, 10), e.Name, e.Email, string(e.Status),
				day(e.CreatedAt.Time, loc), truncate(e.Message, 40),
			}
		},
		filterKeys: []string{services.FilterStatus},
	}

	status := &cli.Command{
		Name:      "status",
		Usage:     "move an enquiry to PENDING, IN_PROGRESS or RESOLVED",
		ArgsUsage: "ID STATUS",
		Action: func(c *cli.Context) error {
			if err := requireLogin(c); err != nil {
				return err
			}
			id, err := argID(c)
			if err != nil {
				return err
			}
			next := models.EnquiryStatus(strings.ToUpper(c.Args().Get(1)))
			enquiry, err := coreFrom(c).Services.Enquiries.SetStatus(c.Context, id, next)
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, enquiry)
		},
	}

	return &cli.Command{
		Name:        "enquiries",
		Usage:       "work the enquiry inbox",
		Subcommands: append(list.commands(), status),
	}
}
