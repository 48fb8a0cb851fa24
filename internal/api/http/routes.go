package httpapi

import (
	"errors"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/mood-weather/internal/cities"
	"github.com/i474232898/mood-weather/internal/mood"
	"github.com/i474232898/mood-weather/internal/session"
)

var validate = validator.New()

// RegisterRoutes wires the HTML UI and the JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, service *session.Service) {
	withSession := sessionMiddleware(service, true)
	readSession := sessionMiddleware(service, false)

	// Server-rendered UI; every form post redirects back to the page.
	app.Get("/", readSession, func(c *fiber.Ctx) error {
		return renderIndex(c, service.View(currentSession(c)))
	})

	app.Post("/mood", withSession, func(c *fiber.Ctx) error {
		req, err := bindMood(c)
		if err != nil {
			return err
		}
		service.SubmitMood(currentSession(c), req.Mood)
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	app.Post("/weather", withSession, func(c *fiber.Ctx) error {
		req, err := bindPostal(c)
		if err != nil {
			return err
		}
		service.SubmitPostalCode(c.UserContext(), currentSession(c), req.PostalCode)
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	app.Post("/reset", withSession, func(c *fiber.Ctx) error {
		service.Reset(currentSession(c))
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/moods", func(c *fiber.Ctx) error {
		return c.JSON(mood.Entries())
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		var q citiesQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rng := mood.Interval{Low: q.Low, High: q.High}
		return c.JSON(fiber.Map{
			"key":    rng.Key(),
			"cities": cities.Suggest(&rng),
		})
	})

	sess := v1.Group("/session")

	sess.Get("/", readSession, func(c *fiber.Ctx) error {
		return c.JSON(service.View(currentSession(c)))
	})

	sess.Post("/mood", withSession, func(c *fiber.Ctx) error {
		req, err := bindMood(c)
		if err != nil {
			return err
		}
		return c.JSON(service.SubmitMood(currentSession(c), req.Mood))
	})

	sess.Post("/weather", withSession, func(c *fiber.Ctx) error {
		req, err := bindPostal(c)
		if err != nil {
			return err
		}
		return c.JSON(service.SubmitPostalCode(c.UserContext(), currentSession(c), req.PostalCode))
	})

	sess.Post("/reset", withSession, func(c *fiber.Ctx) error {
		return c.JSON(service.Reset(currentSession(c)))
	})
}

// moodRequest is the body of a mood submission (JSON or form).
// Any text is accepted; an unknown mood is reported in the view, not as a 400.
type moodRequest struct {
	Mood string `json:"mood" form:"mood"`
}

// postalRequest is the body of a postal-code submission (JSON or form).
type postalRequest struct {
	PostalCode string `json:"postalCode" form:"postalCode"`
}

func bindMood(c *fiber.Ctx) (moodRequest, error) {
	var req moodRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	// Form values alias fasthttp buffers; the session outlives the request.
	req.Mood = utils.CopyString(req.Mood)
	return req, nil
}

func bindPostal(c *fiber.Ctx) (postalRequest, error) {
	var req postalRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.PostalCode = utils.CopyString(req.PostalCode)
	return req, nil
}

// citiesQuery holds query parameters for the city suggestion endpoint.
type citiesQuery struct {
	Low  float64
	High float64 `validate:"gtefield=Low"`
}

func (q *citiesQuery) bind(c *fiber.Ctx) error {
	lowStr := c.Query("low")
	highStr := c.Query("high")
	if lowStr == "" || highStr == "" {
		return errors.New("low and high query parameters are required")
	}

	low, err := strconv.ParseFloat(lowStr, 64)
	if err != nil {
		return errors.New("low must be a number")
	}
	high, err := strconv.ParseFloat(highStr, 64)
	if err != nil {
		return errors.New("high must be a number")
	}
	if !isFinite(low) || !isFinite(high) {
		return errors.New("low and high must be finite")
	}

	q.Low = low
	q.High = high
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
