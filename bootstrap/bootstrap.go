package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/accounts"
	"github.com/fulldump/firelite/api"
	"github.com/fulldump/firelite/configuration"
	"github.com/fulldump/firelite/store"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	s := store.Open(c.DataFile)

	b := api.Build(s, accounts.NewService(s), VERSION)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		box.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			fmt.Println(err.Error())
		}
	}

	return
}
