package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/qiniu/x/log"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/service/task"
	"github.com/solutions/recruit-cube/internal/service/web"
)

var (
	configFilePath = "recruit-cube.conf"
)

func main() {
	fmt.Println(time.Now())
	flag.StringVar(&configFilePath, "f", configFilePath, "configuration file to run recruit-cube server")
	flag.Parse()

	utils.InitConf(configFilePath)
	log.SetOutputLevel(utils.DefaultConf.DebugLevel)
	rand.Seed(time.Now().UnixNano())

	go func() {
		reconcileTask, err := task.NewReconcileTask(utils.DefaultConf.Mongo.URI, utils.DefaultConf.Mongo.Database)
		if err != nil {
			log.Errorf("failed to create reconcile task, error %v", err)
			return
		}
		_ = gocron.Every(1).Hours().Do(reconcileTask.TaskForReconcileJobCounters)
		<-gocron.Start()
	}()

	r, err := web.NewRouter(&utils.DefaultConf)
	if err != nil {
		log.Fatalf("failed to create gin HTTP server, error %v", err)
	}

	errch := make(chan error, 1)
	go func() {
		httpServerErr := r.Run(utils.DefaultConf.ListenAddr)
		errch <- httpServerErr
	}()

	qC := make(chan os.Signal, 1)
	signal.Notify(qC, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-qC:
		log.Info(s.String())
	case err = <-errch:
		log.Error("server stopped, error", err.Error())
	}
}
