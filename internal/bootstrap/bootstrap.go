package bootstrap

import (
	goalinadapter "focal/internal/modules/goal/adapter/in"
	goaloutadapter "focal/internal/modules/goal/adapter/out"
	goalservice "focal/internal/modules/goal/service"
	goalusecase "focal/internal/modules/goal/usecase"
	pomodoroinadapter "focal/internal/modules/pomodoro/adapter/in"
	pomodorooutadapter "focal/internal/modules/pomodoro/adapter/out"
	pomodoroservice "focal/internal/modules/pomodoro/service"
	pomodorousecase "focal/internal/modules/pomodoro/usecase"
	statsinadapter "focal/internal/modules/stats/adapter/in"
	statsusecase "focal/internal/modules/stats/usecase"
	thoughtinadapter "focal/internal/modules/thought/adapter/in"
	thoughtoutadapter "focal/internal/modules/thought/adapter/out"
	thoughtservice "focal/internal/modules/thought/service"
	thoughtusecase "focal/internal/modules/thought/usecase"
	"focal/internal/platform/clock"
	"focal/internal/platform/config"
	"focal/internal/platform/docdb"
	"focal/internal/platform/id"
)

type App struct {
	Settings config.Settings

	GoalCLI     goalinadapter.CLIHandler
	PomodoroCLI pomodoroinadapter.CLIHandler
	ThoughtCLI  thoughtinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler

	// Hooks is where external collaborators register session lifecycle
	// callbacks before issuing timer commands.
	Hooks *pomodorooutadapter.HookRegistry
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	db := docdb.Open(cfg.DBPath)

	goalStore, err := goaloutadapter.NewDocumentGoalStore(db)
	if err != nil {
		return nil, err
	}
	goalProjector, err := goaloutadapter.NewSQLiteGoalProjector(cfg.IndexPath)
	if err != nil {
		return nil, err
	}
	goalUC := goalusecase.NewInteractor(goalservice.NewGoalService(clk, ids, goalStore, goalProjector))

	hooks := pomodorooutadapter.NewHookRegistry()
	sessionProjector, err := pomodorooutadapter.NewSQLiteSessionProjector(cfg.IndexPath)
	if err != nil {
		return nil, err
	}
	pomodoroUC := pomodorousecase.NewInteractor(
		pomodoroservice.NewPomodoroService(clk, ids, settings.PomodoroMinutes),
		clk,
		goalUC,
		pomodorooutadapter.NewFileActiveStateStore(cfg.SessionPath),
		pomodorooutadapter.NewDocumentHistoryStore(db),
		sessionProjector,
		hooks,
	)

	thoughtUC := thoughtusecase.NewInteractor(
		thoughtservice.NewThoughtService(clk, ids, thoughtoutadapter.NewDocumentThoughtStore(db)),
	)

	statsUC := statsusecase.NewInteractor(clk, goalUC, pomodoroUC)

	return &App{
		Settings:    settings,
		GoalCLI:     goalinadapter.NewCLIHandler(goalUC),
		PomodoroCLI: pomodoroinadapter.NewCLIHandler(pomodoroUC),
		ThoughtCLI:  thoughtinadapter.NewCLIHandler(thoughtUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		Hooks:       hooks,
	}, nil
}
