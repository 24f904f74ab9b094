package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	names := request.Algorithms
	if len(names) == 0 {
		names = s.config.Algorithms
	}
	algorithms := make([]schedulers.Algorithm, 0, len(names))
	for _, name := range names {
		algorithm, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			return badRequest(ctx, err)
		}
		algorithms = append(algorithms, algorithm)
	}

	response, err := schedulers.Compare(ctx.UserContext(), request.Processes(), algorithms...)
	if err != nil {
		slog.Error("comparison failed", util.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.Simulate(ctx.UserContext(), request.Processes(), algorithm)
	if err != nil {
		slog.Error("schedule failed", slog.String("algorithm", string(algorithm)), util.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
	}
	return ctx.JSON(response)
}

var errInvalidFormat = errors.New("invalid request format")

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		slog.Warn("invalid request body", util.ErrAttr(err))
		return nil, errInvalidFormat
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
