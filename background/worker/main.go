package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/helpconnect/helpconnect-api/background"
	"github.com/helpconnect/helpconnect-api/store"
	"github.com/helpconnect/helpconnect-api/utils"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initLog()
	utils.InitI18NBundle()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	defer ormDB.Close()

	machineryServer, err := machinery.NewServer(&machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "helpconnect_background",
		ResultBackend: viper.GetString("redis.conn"),
	})
	if err != nil {
		log.Panic(err)
	}

	b := background.New(store.NewHelpConnectStore(ormDB))

	if err := machineryServer.RegisterTasks(map[string]interface{}{
		"broadcast_new_request": b.BroadcastNewRequest,
	}); err != nil {
		log.Panic(err)
	}

	worker := machineryServer.NewWorker("helpconnect_worker", 2)
	if err := worker.Launch(); err != nil {
		log.Fatal(err)
	}
}
