package controllers

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

func writeXLSX(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
