package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/app/models/dto"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and keep the session for later commands",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, EnvVars: []string{"COURSEADMIN_USERNAME"}},
			&cli.StringFlag{Name: "password", EnvVars: []string{"COURSEADMIN_PASSWORD"}, Usage: "read from stdin when empty"},
		},
		Action: func(c *cli.Context) error {
			password := c.String("password")
			if password == "" {
				fmt.Fprint(c.App.Writer, "Password: ")
				line, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
				password = strings.TrimRight(line, "\r\n")
			}

			sess, err := coreFrom(c).Services.Auth.Login(c.Context, dto.LoginRequest{
				Username: c.String("username"),
				Password: password,
			})
			if err != nil {
				return err
			}
			return printSession(c, sess)
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session everywhere it is used",
		Action: func(c *cli.Context) error {
			return coreFrom(c).Services.Auth.Logout()
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the current session",
		Action: func(c *cli.Context) error {
			return printSession(c, coreFrom(c).Services.Auth.Session())
		},
	}
}

func printSession(c *cli.Context, sess dto.SessionResponse) error {
	if !sess.Authenticated {
		fmt.Fprintln(c.App.Writer, "not logged in")
		return nil
	}
	expires := "never"
	if sess.ExpiresAt != nil {
		expires = sess.ExpiresAt.In(coreFrom(c).Config.Location()).Format("2006-01-02 15:04")
	}
	return printTable(c.App.Writer, []string{"USER", "ROLE", "EXPIRES"}, [][]string{{
		orDash(sess.UserID), orDash(sess.Role), expires,
	}})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "summarize every collection",
		Action: func(c *cli.Context) error {
			if err := requireLogin(c); err != nil {
				return err
			}
			stats, err := coreFrom(c).Services.Dashboard.Stats(c.Context)
			if err != nil {
				return err
			}

			itoa := strconv.Itoa
			return printTable(c.App.Writer, []string{"COLLECTION", "COUNT", "DETAIL"}, [][]string{
				{"courses", itoa(stats.Courses), itoa(stats.VisibleCourses) + " visible"},
				{"instructors", itoa(stats.Instructors), ""},
				{"accommodations", itoa(stats.Accommodations), ""},
				{"enrollments", itoa(stats.Enrollments), fmt.Sprintf("%d paid, %d pending, %d today", stats.PaidEnrollments, stats.PendingEnrollments, stats.TodayEnrollments)},
				{"revenue", money(stats.Revenue), "paid enrollments"},
				{"enquiries", itoa(stats.Enquiries), itoa(stats.OpenEnquiries) + " open"},
				{"testimonials", itoa(stats.Testimonials), ""},
				{"gallery", itoa(stats.GalleryItems), ""},
			})
		},
	}
}
