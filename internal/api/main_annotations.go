// @title           portfolio-agent API
// @version         1.0
// @description     Generates JavaScript that fills HTML forms from a personal portfolio.
// @BasePath        /
package api
