package main

import (
	"github.com/LabKey/labkey-api-go/internal/cli"
)

func main() {
	cli.Execute()
}
