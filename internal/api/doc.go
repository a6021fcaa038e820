// Package api implements the JSON REST API mounted at /api/v1.
//
// @title                       Chalkline API
// @version                     1.0
// @description                 REST API for managing teachers, subjects, absences, and the weekly timetable.
// @BasePath                    /api/v1
//
// @securityDefinitions.apikey  BearerToken
// @in                          header
// @name                        Authorization
// @description                 Static API token, passed as "Bearer <token>".
package api
