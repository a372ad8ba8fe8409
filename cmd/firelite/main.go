package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/firelite/bootstrap"
	"github.com/fulldump/firelite/configuration"
)

var banner = `
 ______ _          _     _ _
 |  ___(_)        | |   (_) |
 | |_   _ _ __ ___| |    _| |_ ___
 |  _| | | '__/ _ \ |   | | __/ _ \
 | |   | | | |  __/ |___| | ||  __/
 \_|   |_|_|  \___\_____/_|\__\___|

`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
